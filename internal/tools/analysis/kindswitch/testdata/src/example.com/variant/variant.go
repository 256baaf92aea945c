package variant

type Kind uint8

const (
	KindVoid Kind = iota
	KindBoolean
	KindReal
	KindInteger
	KindString

	kindUnexported Kind = 99
)

type Variant struct{ k Kind }

func (v Variant) Kind() Kind { return v.k }
