package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Lexer is responsible for tokenizing Just source text.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	// line and col are the position of the last rune read.  Both are zero
	// before anything has been read.
	line, col int

	// newlinePending indicates that the last rune read was a newline: the
	// next rune begins a new line
	newlinePending bool

	startLine, startCol int
}

// NewLexer creates a new lexer over the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		file:    bufio.NewReader(r),
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the input.  If the input has ended,
// this will be an EOF token positioned on the last character read.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		default:
			if isDecimalDigit(c) || c == '.' {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	return &Token{Kind: EOF, Line: l.line, Col: l.col}, nil
}

// -----------------------------------------------------------------------------

// lexPunctOrOper lexes a punctuation or operator symbol.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if _, isPrefix := symbolPrefixes[c]; !ok && !isPrefix {
		l.tokBuff.Reset()
		return nil, l.lexError(c, "")
	}

	next, err := l.peek()
	if err != nil {
		return nil, err
	}

	if next != -1 {
		if _kind, ok := symbolPatterns[l.tokBuff.String()+string(next)]; ok {
			l.eat()
			return l.makeToken(_kind), nil
		}
	}

	if !ok {
		// a lone `|` or `&` is not a token
		after := l.tokBuff.String()
		l.tokBuff.Reset()
		l.skip()
		return nil, l.lexError(next, after)
	}

	return l.makeToken(kind), nil
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else {
		kind = IDENTIFIER
	}

	return l.makeToken(kind), nil
}

// lexNumericLit lexes an integer or floating point literal.
//
//	int_lit = digit {digit}
//	float_lit = digit {digit} '.' {digit} [exponent] | '.' digit {digit} [exponent]
//		| digit {digit} exponent
//	exponent = ('e' | 'E') ['+' | '-'] digit {digit}
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()

	digits := func() (int, error) {
		n := 0
		for {
			c, err := l.peek()
			if err != nil {
				return 0, err
			} else if !isDecimalDigit(c) {
				return n, nil
			}

			l.eat()
			n++
		}
	}

	intDigits, err := digits()
	if err != nil {
		return nil, err
	}

	isFloat := false
	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c == '.' {
		l.eat()
		isFloat = true

		fracDigits, err := digits()
		if err != nil {
			return nil, err
		}

		// a lone `.` is not a token
		if intDigits == 0 && fracDigits == 0 {
			l.tokBuff.Reset()
			return nil, l.lexError('.', "")
		}

		if c, err = l.peek(); err != nil {
			return nil, err
		}
	}

	if c == 'e' || c == 'E' {
		l.eat()
		isFloat = true

		if c, err = l.peek(); err != nil {
			return nil, err
		} else if c == '+' || c == '-' {
			l.eat()
		}

		if expDigits, err := digits(); err != nil {
			return nil, err
		} else if expDigits == 0 {
			next, err := l.peek()
			if err != nil {
				return nil, err
			}

			after := l.tokBuff.String()
			l.tokBuff.Reset()
			l.skip()
			return nil, l.lexError(next, after)
		}
	}

	if isFloat {
		return l.makeToken(FLOATLIT), nil
	}

	return l.makeToken(INTLIT), nil
}

// lexCommentOrDiv lexes a comment or a division token.
func (l *Lexer) lexCommentOrDiv() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case '/':
		for ; err == nil && c != '\n' && c != -1; c, err = l.skip() {
		}
	case '*':
		l.skip()
		for {
			c, err = l.skip()
			if err != nil {
				return nil, err
			} else if c == -1 {
				return nil, &LexError{Line: l.line, Col: l.col, Char: -1}
			}

			if c == '*' {
				next, err := l.peek()
				if err != nil {
					return nil, err
				} else if next == '/' {
					l.skip()
					break
				}
			}
		}
	default:
		l.tokBuff.WriteRune('/')
		return l.makeToken(DIV), nil
	}

	return nil, err
}

// -----------------------------------------------------------------------------

// lexError builds a lexical error for the rune c which has just been read.
func (l *Lexer) lexError(c rune, after string) *LexError {
	return &LexError{Line: l.line, Col: l.col, Char: c, After: after}
}

// mark sets the lexer's stored start line and column to the position of the
// next rune to be read.
func (l *Lexer) mark() {
	if l.newlinePending || l.line == 0 {
		l.startLine = l.line + 1
		l.startCol = 1
	} else {
		l.startLine = l.line
		l.startCol = l.col + 1
	}
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Line:  l.startLine,
		Col:   l.startCol,
	}
}

// updatePos updates the lexer's position after reading the rune c.
func (l *Lexer) updatePos(c rune) {
	if l.newlinePending || l.line == 0 {
		l.line++
		l.col = 0
		l.newlinePending = false
	}

	l.col++
	l.newlinePending = c == '\n'
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, err := l.skip()
	if err == nil && c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c, err
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}
