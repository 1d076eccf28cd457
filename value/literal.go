package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Literal is a kind paired with a concrete payload value.  There is no Void
// literal: Void has no payload.
type Literal interface {
	// Kind returns the kind of the literal.
	Kind() Kind

	// String returns the concrete syntax text of the literal.
	String() string
}

// BoolLit is a Boolean literal.
type BoolLit bool

// IntLit is an Int literal.
type IntLit int64

// FloatLit is a Float literal.
type FloatLit float64

// The two Boolean literals.
const (
	True  BoolLit = true
	False BoolLit = false
)

func (BoolLit) Kind() Kind  { return Boolean{} }
func (IntLit) Kind() Kind   { return Int{} }
func (FloatLit) Kind() Kind { return Float{} }

func (b BoolLit) String() string {
	return strconv.FormatBool(bool(b))
}

func (i IntLit) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String formats the float in the shortest decimal form that parses back to
// the same value.  A `.0` is appended to integral values so the text always
// lexes as a float literal.
func (f FloatLit) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// -----------------------------------------------------------------------------

// ErrNonFinite is returned for float literals that have no concrete syntax.
var ErrNonFinite = errors.New("float literal must be finite")

// CheckLiteral reports whether a literal can be written in concrete syntax.
func CheckLiteral(lit Literal) error {
	if f, ok := lit.(FloatLit); ok {
		if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
			return fmt.Errorf("%w: %v", ErrNonFinite, float64(f))
		}
	}

	return nil
}

// Parse converts literal text into a literal of the given kind.  Void has no
// literals and always fails.
func Parse(k Kind, text string) (Literal, error) {
	switch k.(type) {
	case Boolean:
		b, err := strconv.ParseBool(text)
		if err != nil || (text != "true" && text != "false") {
			return nil, fmt.Errorf("invalid boolean literal: %q", text)
		}

		return BoolLit(b), nil
	case Int:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int literal: %q", text)
		}

		return IntLit(i), nil
	case Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal: %q", text)
		}

		lit := FloatLit(f)
		if err := CheckLiteral(lit); err != nil {
			return nil, err
		}

		return lit, nil
	case Void:
		return nil, errors.New("void has no literals")
	}

	return nil, fmt.Errorf("%w: %v", ErrUnrecognizedType, k)
}
