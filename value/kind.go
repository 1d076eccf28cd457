package value

import (
	"errors"
	"fmt"
)

// Kind represents one of the closed set of Just value kinds.  The set is
// sealed by the unexported marker method: only the kinds declared in this
// file can implement it, and each must provide its own keyword.
type Kind interface {
	// Keyword returns the concrete syntax keyword naming the kind.
	Keyword() string

	// String returns the descriptive name of the kind (eg. `Int`).
	String() string

	isKind()
}

// Boolean is the kind of `true` and `false`.
type Boolean struct{}

// Int is the kind of 64 bit signed integers.
type Int struct{}

// Float is the kind of double precision floating point numbers.
type Float struct{}

// Void is the kind of functions that return nothing.  It has no literals.
type Void struct{}

func (Boolean) Keyword() string { return "boolean" }
func (Int) Keyword() string     { return "int" }
func (Float) Keyword() string   { return "float" }
func (Void) Keyword() string    { return "void" }

func (Boolean) String() string { return "Boolean" }
func (Int) String() string     { return "Int" }
func (Float) String() string   { return "Float" }
func (Void) String() string    { return "Void" }

func (Boolean) isKind() {}
func (Int) isKind()     {}
func (Float) isKind()   {}
func (Void) isKind()    {}

// -----------------------------------------------------------------------------

// ErrUnrecognizedType is returned when a kind selector names no known kind.
var ErrUnrecognizedType = errors.New("unrecognized type")

// Kinds returns all the value kinds in declaration order.
func Kinds() []Kind {
	return []Kind{Boolean{}, Int{}, Float{}, Void{}}
}

// Resolve returns a fresh instance of the kind named by selector.  The
// selector may be either the concrete syntax keyword (`int`) or the name of
// the kind (`Int`).
func Resolve(selector string) (Kind, error) {
	for _, k := range Kinds() {
		if k.Keyword() == selector || k.String() == selector {
			return k, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedType, selector)
}

// Same returns whether two kinds are the same kind.  A nil kind is never the
// same as any other kind.
func Same(a, b Kind) bool {
	if a == nil || b == nil {
		return false
	}

	return a == b
}

// IsVoid returns whether the kind is Void.
func IsVoid(k Kind) bool {
	_, ok := k.(Void)
	return ok
}
