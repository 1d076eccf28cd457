package generate

import (
	"fmt"

	"just/logging"
)

// LowerError is an error in a program that prevents it from being lowered:
// most often values of different kinds being combined.
type LowerError struct {
	Message  string
	Position *logging.TextPosition
}

func (le *LowerError) Error() string {
	if le.Position == nil {
		return le.Message
	}

	return fmt.Sprintf("%d:%d: %s", le.Position.StartLn, le.Position.StartCol, le.Message)
}

// raise stops generation with an error.
func raise(pos *logging.TextPosition, msg string, args ...interface{}) {
	panic(&LowerError{Message: fmt.Sprintf(msg, args...), Position: pos})
}

// catchErrors recovers an error raised during generation and stores it in
// err.  Any other panic keeps unwinding.
func catchErrors(err *error) {
	if x := recover(); x != nil {
		if le, ok := x.(*LowerError); ok {
			*err = le
			return
		}

		panic(x)
	}
}
