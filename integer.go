package variant

import "strconv"

type integerValue int

func (integerValue) kind() Kind { return KindInteger }

func (i integerValue) equal(other payload) bool {
	return i == other.(integerValue)
}

func (i integerValue) lessEqual(other payload) bool {
	return i <= other.(integerValue)
}

func (i integerValue) greaterEqual(other payload) bool {
	return i >= other.(integerValue)
}

func (i integerValue) plain() string {
	return strconv.Itoa(int(i))
}

func (i integerValue) goString() string {
	return "variant.Integer(" + i.plain() + ")"
}
