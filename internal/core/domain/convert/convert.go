/*
Package convert turns raw command-line tokens into typed values.

Every supported type is identified by a Type tag and served by a Converter.
Converters are pure: the same raw token always yields the same value or the
same *ParseError. New types are added by registering a Converter in a Table;
nothing that consumes the table needs to change.
*/
package convert

import (
	"errors"
	"fmt"
)

// Type identifies the semantic type a Converter produces.
type Type string

// ErrConversion is matched by every *ParseError.
var ErrConversion = errors.New("argument conversion failed")

/*
Converter converts a single raw token into a value of its Type.
Parse returns a *ParseError when the token is not a valid representation.
*/
type Converter interface {
	Type() Type
	Parse(raw string) (any, error)
}

// ParseError reports a token that could not be converted to Type.
type ParseError struct {
	Type Type
	Raw  string
	Err  error // underlying parser error, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: '%s'", e.Type, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConversion.
func (e *ParseError) Is(target error) bool { return target == ErrConversion }

// Func adapts a typed parse function to the Converter interface.
type Func[T any] struct {
	typ   Type
	parse func(raw string) (T, error)
}

// NewFunc creates a Converter for typ backed by parse.
// Errors returned by parse that are not already a *ParseError are wrapped in one.
func NewFunc[T any](typ Type, parse func(raw string) (T, error)) Func[T] {
	return Func[T]{typ: typ, parse: parse}
}

// Type implements Converter.
func (f Func[T]) Type() Type { return f.typ }

// Parse implements Converter.
func (f Func[T]) Parse(raw string) (any, error) {
	v, err := f.ParseTyped(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ParseTyped converts raw without boxing the result.
func (f Func[T]) ParseTyped(raw string) (T, error) {
	v, err := f.parse(raw)
	if err != nil {
		var zero T
		var pe *ParseError
		if errors.As(err, &pe) {
			return zero, pe
		}
		return zero, &ParseError{Type: f.typ, Raw: raw, Err: err}
	}
	return v, nil
}
