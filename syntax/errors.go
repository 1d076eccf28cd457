package syntax

import (
	"fmt"
	"strings"

	"just/logging"
)

// ParseError is raised when the parser encounters a token that the grammar
// does not allow at its position.  Its message follows the conventional
// `Encountered ... at line L, column C.` format.
type ParseError struct {
	// Tok is the offending token
	Tok *Token

	// Expected is the list of token kinds that would have been accepted
	Expected []int
}

func (pe *ParseError) Error() string {
	sb := strings.Builder{}
	sb.WriteString(pe.Headline())

	switch len(pe.Expected) {
	case 0:
	case 1:
		sb.WriteString("\nWas expecting:")
	default:
		sb.WriteString("\nWas expecting one of:")
	}

	for _, kind := range pe.Expected {
		sb.WriteString("\n    ")
		sb.WriteString(TokenImage(kind))
		sb.WriteString(" ...")
	}

	return sb.String()
}

// Headline returns the first line of the error message: the offending token
// and its position.
func (pe *ParseError) Headline() string {
	if pe.Tok.Kind == EOF {
		return fmt.Sprintf("Encountered \"%s\" at line %d, column %d.", TokenImage(EOF), pe.Tok.Line, pe.Tok.Col)
	}

	return fmt.Sprintf(
		"Encountered \" %s \"%s \"\" at line %d, column %d.",
		TokenImage(pe.Tok.Kind),
		escape(pe.Tok.Value),
		pe.Tok.Line,
		pe.Tok.Col,
	)
}

// Position returns the position of the offending token
func (pe *ParseError) Position() *logging.TextPosition {
	return pe.Tok.Position()
}

// LexError is raised when the lexer encounters a character that cannot begin
// any token.
type LexError struct {
	Line, Col int

	// Char is the offending character or -1 if the input ended unexpectedly
	Char rune

	// After is the text of the partial token read before the error
	After string
}

func (le *LexError) Error() string {
	if le.Char == -1 {
		return fmt.Sprintf(
			"Lexical error at line %d, column %d.  Encountered: <EOF> after : \"%s\"",
			le.Line, le.Col, escape(le.After),
		)
	}

	return fmt.Sprintf(
		"Lexical error at line %d, column %d.  Encountered: \"%s\" (%d), after : \"%s\"",
		le.Line, le.Col, escape(string(le.Char)), le.Char, escape(le.After),
	)
}

// Position returns the position of the offending character
func (le *LexError) Position() *logging.TextPosition {
	return &logging.TextPosition{StartLn: le.Line, StartCol: le.Col, EndLn: le.Line, EndCol: le.Col}
}

// escape makes control characters in token text visible in error messages
func escape(s string) string {
	sb := strings.Builder{}
	for _, c := range s {
		switch c {
		case '\b':
			sb.WriteString(`\b`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\f':
			sb.WriteString(`\f`)
		case '\r':
			sb.WriteString(`\r`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			if c < 0x20 || c > 0x7e {
				fmt.Fprintf(&sb, `\u%04x`, c)
			} else {
				sb.WriteRune(c)
			}
		}
	}

	return sb.String()
}
