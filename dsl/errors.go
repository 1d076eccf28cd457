package dsl

import (
	"errors"
	"fmt"
)

// Errors reported by the builder.  They are always wrapped in a BuildError.
var (
	ErrNoKind          = errors.New("missing value kind")
	ErrVoidVariable    = errors.New("variables and parameters cannot be void")
	ErrKindMismatch    = errors.New("value kind does not match declared kind")
	ErrUnknownVariable = errors.New("variable was not declared in this program")
	ErrMissingValue    = errors.New("a value is required")
	ErrVoidReturn      = errors.New("void function cannot return a value")
	ErrBuildFinished   = errors.New("builder used after its program was built")
	ErrReservedName    = errors.New("name is a reserved word")
)

// BuildError is a programmer error raised while constructing a program.  The
// construction is abandoned as soon as one occurs.
type BuildError struct {
	// Op is the builder operation that failed (eg. `assign`).
	Op string

	// Name is the name of the construct being built, if it has one.
	Name string

	Err error
}

func (be *BuildError) Error() string {
	if be.Name == "" {
		return fmt.Sprintf("%s: %s", be.Op, be.Err)
	}

	return fmt.Sprintf("%s `%s`: %s", be.Op, be.Name, be.Err)
}

func (be *BuildError) Unwrap() error {
	return be.Err
}

// abort stops the current construction with a build error.
func abort(op, name string, err error) {
	panic(&BuildError{Op: op, Name: name, Err: err})
}

// catchBuildErrors recovers a build error raised during construction and
// stores it in `err`.  Any other panic keeps unwinding.
// NB: This function must ALWAYS be deferred.
func catchBuildErrors(err *error) {
	if x := recover(); x != nil {
		if be, ok := x.(*BuildError); ok {
			*err = be
			return
		}

		panic(x)
	}
}
