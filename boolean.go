package variant

import "strconv"

type booleanValue bool

func (booleanValue) kind() Kind { return KindBoolean }

func (b booleanValue) equal(other payload) bool {
	return b == other.(booleanValue)
}

// false orders before true.
func (b booleanValue) lessEqual(other payload) bool {
	return !bool(b) || bool(other.(booleanValue))
}

func (b booleanValue) greaterEqual(other payload) bool {
	return bool(b) || !bool(other.(booleanValue))
}

func (b booleanValue) plain() string {
	return strconv.FormatBool(bool(b))
}

func (b booleanValue) goString() string {
	return "variant.Boolean(" + b.plain() + ")"
}
