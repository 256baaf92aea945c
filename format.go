package variant

import (
	"fmt"
	"io"
)

// String renders the bare value: strings as is, numbers in decimal, booleans
// as true or false. A void variant renders as the empty string.
func (v Variant) String() string {
	return v.payload().plain()
}

// Verbose renders the value followed by its kind, e.g. "3 : int" or
// "'hi' : string". A void variant always renders as "() : void".
func (v Variant) Verbose() string {
	switch p := v.payload().(type) {
	case stringValue:
		return "'" + string(p) + "' : " + KindString.String()
	case voidValue:
		return "() : " + KindVoid.String()
	default:
		return p.plain() + " : " + p.kind().String()
	}
}

// GoString renders v as the Go expression that creates it.
func (v Variant) GoString() string {
	return v.payload().goString()
}

// WriteVerbose writes the verbose rendering of v to w.
func WriteVerbose(w io.Writer, v Variant) (int, error) {
	return io.WriteString(w, v.Verbose())
}

// Format implements fmt.Formatter. %v and %s print the plain form, %+v the
// verbose form and %#v the Go syntax. %q quotes string payloads and prints
// other kinds in plain form. Width, precision and the '-' flag apply to the
// rendered text as they would for a string.
func (v Variant) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case f.Flag('+'):
			_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), v.Verbose())
		case f.Flag('#'):
			_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), v.GoString())
		default:
			_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), v.String())
		}
	case 's':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), v.String())
	case 'q':
		if v.Kind() == KindString {
			_, _ = fmt.Fprintf(f, fmt.FormatString(f, 'q'), v.String())
			return
		}
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), v.String())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(variant.Variant=%s)", verb, v.String())
	}
}
