package variant

import (
	"math"
	"strconv"
)

type realValue float64

func (realValue) kind() Kind { return KindReal }

// NaN is neither equal to nor ordered against anything, itself included.
func (r realValue) equal(other payload) bool {
	return r == other.(realValue)
}

func (r realValue) lessEqual(other payload) bool {
	return r <= other.(realValue)
}

func (r realValue) greaterEqual(other payload) bool {
	return r >= other.(realValue)
}

func (r realValue) plain() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

func (r realValue) goString() string {
	f := float64(r)
	switch {
	case math.IsNaN(f):
		return "variant.Real(math.NaN())"
	case math.IsInf(f, 1):
		return "variant.Real(math.Inf(1))"
	case math.IsInf(f, -1):
		return "variant.Real(math.Inf(-1))"
	case f == 0 && math.Signbit(f):
		return "variant.Real(math.Copysign(0, -1))"
	}
	return "variant.Real(" + r.plain() + ")"
}
