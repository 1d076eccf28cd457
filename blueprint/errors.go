package blueprint

import "fmt"

// Error is an error in a blueprint entry.
type Error struct {
	// At is the location of the entry in the blueprint (eg.
	// `functions[0].body[2]`).
	At string

	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.At, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// fail stops building the blueprint.
func fail(at string, err error) {
	panic(&Error{At: at, Err: err})
}

// catchErrors recovers a blueprint error and stores it in err.
// NB: This function must ALWAYS be deferred.
func catchErrors(err *error) {
	if x := recover(); x != nil {
		if be, ok := x.(*Error); ok {
			*err = be
			return
		}

		panic(x)
	}
}
