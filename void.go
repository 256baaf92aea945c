package variant

// voidValue stands in for the nil payload of an empty Variant. All void
// values are equal, and each is both <= and >= every other.
type voidValue struct{}

func (voidValue) kind() Kind                { return KindVoid }
func (voidValue) equal(payload) bool        { return true }
func (voidValue) lessEqual(payload) bool    { return true }
func (voidValue) greaterEqual(payload) bool { return true }
func (voidValue) plain() string             { return "" }
func (voidValue) goString() string          { return "variant.Void()" }
