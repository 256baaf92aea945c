package conformance

import (
	"fmt"

	"github.com/tsatke/variant"
	"gopkg.in/yaml.v3"
)

// Suite is the content of a single case file.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case describes one variant, optionally a second one to compare it
// against, and what is expected of them.
type Case struct {
	Name   string      `yaml:"name"`
	Skip   string      `yaml:"skip,omitempty"` // reason
	Left   Operand     `yaml:"left"`
	Right  *Operand    `yaml:"right,omitempty"`
	Expect Expectation `yaml:"expect"`
}

// Operand is a variant spelled out as its kind name and a YAML scalar.
// The kind names are the ones Kind.String returns. A void operand has no
// value.
type Operand struct {
	Kind  string    `yaml:"kind"`
	Value yaml.Node `yaml:"value,omitempty"`
}

// Expectation lists the checks for a case. Unset fields are not checked.
// The comparison checks need a right operand.
type Expectation struct {
	Plain        *string            `yaml:"plain,omitempty"`
	Verbose      *string            `yaml:"verbose,omitempty"`
	Present      *bool              `yaml:"present,omitempty"`
	Numeric      *bool              `yaml:"numeric,omitempty"`
	Equal        *bool              `yaml:"equal,omitempty"`
	NotEqual     *bool              `yaml:"not_equal,omitempty"`
	LessEqual    *bool              `yaml:"less_equal,omitempty"`
	GreaterEqual *bool              `yaml:"greater_equal,omitempty"`
	Number       *NumberExpectation `yaml:"number,omitempty"`
}

// NumberExpectation checks the result of Variant.AsNumber. Error expects
// AsNumber to fail.
type NumberExpectation struct {
	Float64 *float64 `yaml:"float64,omitempty"`
	Int64   *int64   `yaml:"int64,omitempty"`
	Error   bool     `yaml:"error,omitempty"`
}

// Variant builds the variant the operand describes.
func (o Operand) Variant() (variant.Variant, error) {
	switch o.Kind {
	case variant.KindVoid.String():
		if !o.Value.IsZero() {
			return variant.Variant{}, fmt.Errorf("void operand must not have a value")
		}
		return variant.Void(), nil
	case variant.KindString.String():
		var s string
		if err := o.decode(&s); err != nil {
			return variant.Variant{}, err
		}
		return variant.String(s), nil
	case variant.KindInteger.String():
		var i int
		if err := o.decode(&i); err != nil {
			return variant.Variant{}, err
		}
		return variant.Integer(i), nil
	case variant.KindReal.String():
		var f float64
		if err := o.decode(&f); err != nil {
			return variant.Variant{}, err
		}
		return variant.Real(f), nil
	case variant.KindBoolean.String():
		var b bool
		if err := o.decode(&b); err != nil {
			return variant.Variant{}, err
		}
		return variant.Boolean(b), nil
	}
	return variant.Variant{}, fmt.Errorf("unknown kind %q", o.Kind)
}

func (o Operand) decode(target interface{}) error {
	if o.Value.IsZero() {
		return fmt.Errorf("%s operand needs a value", o.Kind)
	}
	if o.Value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%s operand: value must be a scalar (line %d)", o.Kind, o.Value.Line)
	}
	if err := o.Value.Decode(target); err != nil {
		return fmt.Errorf("decode %s operand: %w", o.Kind, err)
	}
	return nil
}
