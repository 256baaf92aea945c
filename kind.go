package variant

//go:generate stringer -type=Kind -linecomment

// Kind identifies which alternative a Variant currently holds. Its String
// method returns the kind name used in verbose rendering.
type Kind uint8

// Known kinds. The zero Kind is KindVoid, so the zero Variant is void.
const (
	KindVoid    Kind = iota // void
	KindBoolean             // bool
	KindReal                // real
	KindInteger             // int
	KindString              // string
)
