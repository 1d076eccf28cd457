package syntax

import (
	"just/logging"
)

// Token represents a token read in by the lexer
type Token struct {
	Kind  int
	Value string

	// Line is line number starting at 1
	Line int

	// Col is the column of the first character of the token starting at 1.
	// Tabs count as a single column.
	Col int
}

// Position returns the text position of the token
func (t *Token) Position() *logging.TextPosition {
	width := len(t.Value)
	if width == 0 {
		width = 1
	}

	return &logging.TextPosition{
		StartLn:  t.Line,
		StartCol: t.Col,
		EndLn:    t.Line,
		EndCol:   t.Col + width - 1,
	}
}

// The various kinds of a tokens supported by the lexer
const (
	EOF = iota

	// keywords
	PROGRAM
	BOOLEAN
	INT
	FLOAT
	VOID
	IF
	ELSE
	WHILE
	RETURN
	TRUE
	FALSE

	// values
	IDENTIFIER
	INTLIT
	FLOATLIT

	// punctuation
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	SEMICOLON
	COMMA
	ASSIGN

	// operators
	OR
	AND
	EQ
	NEQ
	LT
	LTEQ
	GT
	GTEQ
	PLUS
	MINUS
	STAR
	DIV
	MOD
	NOT
)

// tokenImages gives the display image of every token kind.  These images are
// the ones used in parse error messages.
var tokenImages = [...]string{
	EOF: "<EOF>",

	PROGRAM: `"program"`,
	BOOLEAN: `"boolean"`,
	INT:     `"int"`,
	FLOAT:   `"float"`,
	VOID:    `"void"`,
	IF:      `"if"`,
	ELSE:    `"else"`,
	WHILE:   `"while"`,
	RETURN:  `"return"`,
	TRUE:    `"true"`,
	FALSE:   `"false"`,

	IDENTIFIER: "<IDENTIFIER>",
	INTLIT:     "<INTEGER_LITERAL>",
	FLOATLIT:   "<FLOATING_POINT_LITERAL>",

	LBRACE:    `"{"`,
	RBRACE:    `"}"`,
	LPAREN:    `"("`,
	RPAREN:    `")"`,
	SEMICOLON: `";"`,
	COMMA:     `","`,
	ASSIGN:    `"="`,

	OR:    `"||"`,
	AND:   `"&&"`,
	EQ:    `"=="`,
	NEQ:   `"!="`,
	LT:    `"<"`,
	LTEQ:  `"<="`,
	GT:    `">"`,
	GTEQ:  `">="`,
	PLUS:  `"+"`,
	MINUS: `"-"`,
	STAR:  `"*"`,
	DIV:   `"/"`,
	MOD:   `"%"`,
	NOT:   `"!"`,
}

// TokenImage returns the display image of a token kind
func TokenImage(kind int) string {
	if kind < 0 || kind >= len(tokenImages) {
		return "<UNKNOWN>"
	}

	return tokenImages[kind]
}

// keywordPatterns maps keyword strings to their keyword token kind
var keywordPatterns = map[string]int{
	"program": PROGRAM,
	"boolean": BOOLEAN,
	"int":     INT,
	"float":   FLOAT,
	"void":    VOID,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
	"return":  RETURN,
	"true":    TRUE,
	"false":   FALSE,
}

// IsKeyword returns whether the given string is a reserved word of the language
func IsKeyword(s string) bool {
	_, ok := keywordPatterns[s]
	return ok
}

// symbolPatterns maps symbol strings to their punctuation/operator token kind
var symbolPatterns = map[string]int{
	"{": LBRACE,
	"}": RBRACE,
	"(": LPAREN,
	")": RPAREN,
	";": SEMICOLON,
	",": COMMA,
	"=": ASSIGN,

	"||": OR,
	"&&": AND,
	"==": EQ,
	"!=": NEQ,
	"<":  LT,
	"<=": LTEQ,
	">":  GT,
	">=": GTEQ,
	"+":  PLUS,
	"-":  MINUS,
	"*":  STAR,
	// Division operator is handled with comment logic.
	"%": MOD,
	"!": NOT,
}

// symbolPrefixes are the characters that begin a symbol pattern but are not
// symbols on their own
var symbolPrefixes = map[rune]struct{}{
	'|': {},
	'&': {},
}
