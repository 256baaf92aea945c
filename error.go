package variant

import (
	"errors"
	"strings"
)

// ErrNilString is returned by StringPtr when given a nil pointer.
var ErrNilString = errors.New("nil string pointer")

// KindError is returned by the accessors of Variant when the variant holds a
// kind other than the one requested. It always indicates a programming
// error on the caller's side; check Kind first when several kinds are
// possible.
type KindError struct {
	Want []Kind
	Got  Kind
}

func (e *KindError) Error() string {
	want := make([]string, len(e.Want))
	for i, k := range e.Want {
		want[i] = k.String()
	}
	return "expected " + strings.Join(want, " or ") + ", but got " + e.Got.String()
}
