// Package variant provides Variant, a value that holds exactly one of a
// boolean, a real, an integer, a string or nothing (void).
//
// Variants of different kinds never compare equal, and they are not ordered
// against each other either: for a and b of different kinds, both
// a.LessEqual(b) and a.GreaterEqual(b) are false. Nothing is ever converted
// between kinds.
//
// A Variant is a plain value. Copies share no state, but a single Variant
// must not be mutated concurrently without external synchronization.
package variant

import "github.com/tsatke/variant/number"

// Variant is a tagged value. The zero value is void.
type Variant struct {
	// p is nil for void. Its dynamic type is the kind, so kind and value
	// always change together.
	p payload
}

type payload interface {
	kind() Kind
	// equal, lessEqual and greaterEqual are only called with a payload of
	// the same kind.
	equal(other payload) bool
	lessEqual(other payload) bool
	greaterEqual(other payload) bool
	plain() string
	goString() string
}

// Void returns an empty Variant. It is the same as Variant{}.
func Void() Variant { return Variant{} }

// String creates a Variant of kind KindString.
func String(s string) Variant { return Variant{p: stringValue(s)} }

// StringPtr creates a Variant of kind KindString from the string s points to.
// A nil pointer is a caller error and yields ErrNilString.
func StringPtr(s *string) (Variant, error) {
	if s == nil {
		return Variant{}, ErrNilString
	}
	return String(*s), nil
}

// Real creates a Variant of kind KindReal.
func Real(f float64) Variant { return Variant{p: realValue(f)} }

// Integer creates a Variant of kind KindInteger.
func Integer(i int) Variant { return Variant{p: integerValue(i)} }

// Boolean creates a Variant of kind KindBoolean.
func Boolean(b bool) Variant { return Variant{p: booleanValue(b)} }

func (v *Variant) SetString(s string) { *v = String(s) }
func (v *Variant) SetReal(f float64)  { *v = Real(f) }
func (v *Variant) SetInteger(i int)   { *v = Integer(i) }
func (v *Variant) SetBoolean(b bool)  { *v = Boolean(b) }
func (v *Variant) SetVoid()           { *v = Variant{} }

func (v Variant) payload() payload {
	if v.p == nil {
		return voidValue{}
	}
	return v.p
}

// Kind returns the kind of the value currently held.
func (v Variant) Kind() Kind {
	return v.payload().kind()
}

// Present reports whether v holds a value at all. It does not look at the
// value itself, so Boolean(false).Present() is true.
func (v Variant) Present() bool {
	return v.p != nil
}

// IsNumeric reports whether v is a real or an integer.
func (v Variant) IsNumeric() bool {
	k := v.Kind()
	return k == KindReal || k == KindInteger
}

// Equal reports whether v and other have the same kind and equal values.
// Two void variants are equal. Reals compare as float64, so NaN is never
// equal to anything.
func (v Variant) Equal(other Variant) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	return v.payload().equal(other.payload())
}

// NotEqual is the negation of Equal.
func (v Variant) NotEqual(other Variant) bool {
	return !v.Equal(other)
}

// LessEqual reports whether v <= other. It is false whenever the kinds
// differ.
func (v Variant) LessEqual(other Variant) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	return v.payload().lessEqual(other.payload())
}

// GreaterEqual reports whether v >= other. It is false whenever the kinds
// differ.
func (v Variant) GreaterEqual(other Variant) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	return v.payload().greaterEqual(other.payload())
}

// AsString returns the string held by v, or a *KindError if v is not a
// string.
func (v Variant) AsString() (string, error) {
	if s, ok := v.p.(stringValue); ok {
		return string(s), nil
	}
	return "", v.mismatch(KindString)
}

// AsReal returns the float64 held by v, or a *KindError if v is not a real.
// Integers are not converted; use AsNumber for that.
func (v Variant) AsReal() (float64, error) {
	if r, ok := v.p.(realValue); ok {
		return float64(r), nil
	}
	return 0, v.mismatch(KindReal)
}

// AsInteger returns the int held by v, or a *KindError if v is not an
// integer.
func (v Variant) AsInteger() (int, error) {
	if i, ok := v.p.(integerValue); ok {
		return int(i), nil
	}
	return 0, v.mismatch(KindInteger)
}

// AsBoolean returns the bool held by v, or a *KindError if v is not a
// boolean.
func (v Variant) AsBoolean() (bool, error) {
	if b, ok := v.p.(booleanValue); ok {
		return bool(b), nil
	}
	return false, v.mismatch(KindBoolean)
}

// AsNumber returns a real or integer variant as a number.Number. Any other
// kind yields a *KindError.
func (v Variant) AsNumber() (number.Number, error) {
	switch p := v.p.(type) {
	case integerValue:
		return number.FromInt(int64(p)), nil
	case realValue:
		return number.New(float64(p)), nil
	}
	return 0, v.mismatch(KindReal, KindInteger)
}

func (v Variant) mismatch(want ...Kind) error {
	return &KindError{
		Want: want,
		Got:  v.Kind(),
	}
}
