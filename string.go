package variant

import "strconv"

type stringValue string

func (stringValue) kind() Kind { return KindString }

func (s stringValue) equal(other payload) bool {
	return s == other.(stringValue)
}

// Strings order byte-wise.
func (s stringValue) lessEqual(other payload) bool {
	return s <= other.(stringValue)
}

func (s stringValue) greaterEqual(other payload) bool {
	return s >= other.(stringValue)
}

func (s stringValue) plain() string {
	return string(s)
}

func (s stringValue) goString() string {
	return "variant.String(" + strconv.Quote(string(s)) + ")"
}
