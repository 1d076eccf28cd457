package syntax

import (
	"io"
	"sort"
	"strings"

	"just/logging"
	"just/value"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is a recursive descent parser for Just programs.  All parsing
// functions assume that they begin with the parser centered on the first
// token of their production and must consume all tokens (including the last)
// of their production, leaving the parser on the next token.  Parsers are
// created once per input.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the input.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// ParseFile parses a complete program.  The returned error is either a
// *ParseError, a *LexError or an error from the underlying reader.
func (p *Parser) ParseFile() (f *File, err error) {
	defer catchErrors(&err)

	p.next()
	return p.parseFile(), nil
}

// ParseExpr parses a single expression spanning the entire input.
func (p *Parser) ParseExpr() (e Expr, err error) {
	defer catchErrors(&err)

	p.next()
	e = p.parseExpr()
	p.wantAfterExpr(EOF)
	return e, nil
}

// -----------------------------------------------------------------------------

// Validate checks that src is a syntactically valid program.  It returns nil
// if it is and a descriptive error naming the offending token and its
// position if it is not.
func Validate(src string) error {
	_, err := Parse("", src)
	return err
}

// Parse parses the program src.  The path is only used for display.
func Parse(path, src string) (*File, error) {
	f, err := NewParser(strings.NewReader(src)).ParseFile()
	if err != nil {
		return nil, err
	}

	f.Path = path
	return f, nil
}

// ParseExpr parses src as a single expression.
func ParseExpr(src string) (Expr, error) {
	return NewParser(strings.NewReader(src)).ParseExpr()
}

// -----------------------------------------------------------------------------

// syntaxPanic wraps an error raised during parsing so that it can be told
// apart from other panics when it is recovered
type syntaxPanic struct {
	err error
}

// catchErrors recovers a syntax error raised during parsing and stores it in
// err.  Any other panic is propagated.
func catchErrors(err *error) {
	if x := recover(); x != nil {
		if sp, ok := x.(syntaxPanic); ok {
			*err = sp.err
		} else {
			panic(x)
		}
	}
}

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(syntaxPanic{err})
	}

	p.tok = tok
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is on a token of one of the given kinds,
// rejecting it if not.  It returns the token and moves the parser forward.
func (p *Parser) want(kinds ...int) *Token {
	if !p.gotOneOf(kinds...) {
		p.reject(kinds...)
	}

	tok := p.tok
	p.next()
	return tok
}

// wantAfterExpr is want for a token that follows an expression: any binary
// operator could also have continued the expression.
func (p *Parser) wantAfterExpr(kind int) *Token {
	if !p.got(kind) {
		p.reject(append(binaryOperators(), kind)...)
	}

	return p.want(kind)
}

// reject raises an error on the current token.  expected is the list of all
// token kinds that would have been accepted.
func (p *Parser) reject(expected ...int) {
	kinds := append([]int(nil), expected...)
	sort.Ints(kinds)

	// remove duplicates
	n := 0
	for i, kind := range kinds {
		if i == 0 || kind != kinds[n-1] {
			kinds[n] = kind
			n++
		}
	}

	panic(syntaxPanic{&ParseError{Tok: p.tok, Expected: kinds[:n]}})
}

// -----------------------------------------------------------------------------

var (
	varTypes       = []int{BOOLEAN, INT, FLOAT}
	stmtStarts     = []int{BOOLEAN, INT, FLOAT, IF, WHILE, RETURN, IDENTIFIER}
	topDeclStarts  = []int{BOOLEAN, INT, FLOAT, VOID, IDENTIFIER}
	exprStarts     = []int{INTLIT, FLOATLIT, TRUE, FALSE, IDENTIFIER, LPAREN, NOT, MINUS}
	binaryOpLevels = [][]int{
		{OR},
		{AND},
		{EQ, NEQ},
		{LT, LTEQ, GT, GTEQ},
		{PLUS, MINUS},
		{STAR, DIV, MOD},
	}
)

func binaryOperators() []int {
	var ops []int
	for _, level := range binaryOpLevels {
		ops = append(ops, level...)
	}

	return ops
}

func withKind(kinds []int, kind int) []int {
	return append(append([]int(nil), kinds...), kind)
}

// file = 'program' IDENT '{' {top_decl} '}' EOF
func (p *Parser) parseFile() *File {
	start := p.want(PROGRAM)
	name := p.want(IDENTIFIER)
	p.want(LBRACE)

	var decls []Decl
	for !p.got(RBRACE) {
		if !p.gotOneOf(topDeclStarts...) {
			p.reject(withKind(topDeclStarts, RBRACE)...)
		}

		decls = append(decls, p.parseTopDecl())
	}

	end := p.want(RBRACE)
	p.want(EOF)

	return &File{
		span:    span{logging.SpanOver(start.Position(), end.Position())},
		Name:    name.Value,
		NamePos: name.Position(),
		Decls:   decls,
	}
}

// top_decl = func_decl | var_decl | assign
func (p *Parser) parseTopDecl() Decl {
	switch p.tok.Kind {
	case VOID:
		typeTok := p.want(VOID)
		return p.parseFuncDecl(typeTok, p.want(IDENTIFIER))
	case IDENTIFIER:
		return p.parseAssign()
	default:
		typeTok := p.want(varTypes...)
		name := p.want(IDENTIFIER)

		if p.got(LPAREN) {
			return p.parseFuncDecl(typeTok, name)
		}

		return p.parseVarDeclRest(typeTok, name, LPAREN)
	}
}

// func_decl = type IDENT '(' [param {',' param}] ')' block
//
// The type and name have already been consumed.
func (p *Parser) parseFuncDecl(typeTok, name *Token) *FuncDecl {
	p.want(LPAREN)

	var params []*Param
	if !p.got(RPAREN) {
		if !p.gotOneOf(varTypes...) {
			p.reject(withKind(varTypes, RPAREN)...)
		}

		for {
			params = append(params, p.parseParam())

			if p.got(COMMA) {
				p.next()
			} else {
				break
			}
		}

		if !p.got(RPAREN) {
			p.reject(COMMA, RPAREN)
		}
	}

	p.want(RPAREN)
	body := p.parseBlock()

	return &FuncDecl{
		span:    span{logging.SpanOver(typeTok.Position(), body.Span)},
		Returns: kindOfToken(typeTok),
		Name:    name.Value,
		NamePos: name.Position(),
		Params:  params,
		Body:    body,
	}
}

// param = var_type IDENT
func (p *Parser) parseParam() *Param {
	typeTok := p.want(varTypes...)
	name := p.want(IDENTIFIER)

	return &Param{
		span: span{logging.SpanOver(typeTok.Position(), name.Position())},
		Kind: kindOfToken(typeTok),
		Name: name.Value,
	}
}

// var_decl = var_type IDENT ['=' expr] ';'
func (p *Parser) parseVarDecl() *VarDecl {
	typeTok := p.want(varTypes...)
	name := p.want(IDENTIFIER)
	return p.parseVarDeclRest(typeTok, name)
}

// parseVarDeclRest parses the remainder of a variable declaration after its
// type and name.  alts are other token kinds that would have been accepted
// after the name.
func (p *Parser) parseVarDeclRest(typeTok, name *Token, alts ...int) *VarDecl {
	var init Expr
	if p.got(ASSIGN) {
		p.next()
		init = p.parseExpr()

		end := p.wantAfterExpr(SEMICOLON)
		return &VarDecl{
			span:    span{logging.SpanOver(typeTok.Position(), end.Position())},
			Kind:    kindOfToken(typeTok),
			Name:    name.Value,
			NamePos: name.Position(),
			Init:    init,
		}
	}

	if !p.got(SEMICOLON) {
		p.reject(append([]int{ASSIGN, SEMICOLON}, alts...)...)
	}

	end := p.want(SEMICOLON)
	return &VarDecl{
		span:    span{logging.SpanOver(typeTok.Position(), end.Position())},
		Kind:    kindOfToken(typeTok),
		Name:    name.Value,
		NamePos: name.Position(),
	}
}

// assign = IDENT '=' expr ';'
func (p *Parser) parseAssign() *Assign {
	name := p.want(IDENTIFIER)
	p.want(ASSIGN)
	val := p.parseExpr()
	end := p.wantAfterExpr(SEMICOLON)

	return &Assign{
		span:   span{logging.SpanOver(name.Position(), end.Position())},
		Target: &Ident{span: span{name.Position()}, Name: name.Value},
		Value:  val,
	}
}

// block = '{' {stmt} '}'
func (p *Parser) parseBlock() *Block {
	start := p.want(LBRACE)

	var stmts []Stmt
	for !p.got(RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	end := p.want(RBRACE)
	return &Block{
		span:  span{logging.SpanOver(start.Position(), end.Position())},
		Stmts: stmts,
	}
}

// stmt = var_decl | assign | if_stmt | while_stmt | return_stmt
func (p *Parser) parseStmt() Stmt {
	switch p.tok.Kind {
	case BOOLEAN, INT, FLOAT:
		return p.parseVarDecl()
	case IDENTIFIER:
		return p.parseAssign()
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case RETURN:
		return p.parseReturn()
	}

	p.reject(withKind(stmtStarts, RBRACE)...)
	return nil
}

// if_stmt = 'if' '(' expr ')' block ['else' block]
func (p *Parser) parseIf() *If {
	start := p.want(IF)
	p.want(LPAREN)
	cond := p.parseExpr()
	p.wantAfterExpr(RPAREN)
	then := p.parseBlock()

	ifStmt := &If{
		span: span{logging.SpanOver(start.Position(), then.Span)},
		Cond: cond,
		Then: then,
	}

	if p.got(ELSE) {
		p.next()
		ifStmt.Else = p.parseBlock()
		ifStmt.Span = logging.SpanOver(start.Position(), ifStmt.Else.Span)
	}

	return ifStmt
}

// while_stmt = 'while' '(' expr ')' block
func (p *Parser) parseWhile() *While {
	start := p.want(WHILE)
	p.want(LPAREN)
	cond := p.parseExpr()
	p.wantAfterExpr(RPAREN)
	body := p.parseBlock()

	return &While{
		span: span{logging.SpanOver(start.Position(), body.Span)},
		Cond: cond,
		Body: body,
	}
}

// return_stmt = 'return' [expr] ';'
func (p *Parser) parseReturn() *Return {
	start := p.want(RETURN)

	var val Expr
	if !p.got(SEMICOLON) {
		if !p.gotOneOf(exprStarts...) {
			p.reject(withKind(exprStarts, SEMICOLON)...)
		}

		val = p.parseExpr()
		p.wantAfterExpr(SEMICOLON)
	} else {
		p.next()
	}

	ret := &Return{Value: val}
	ret.Span = logging.SpanOver(start.Position(), start.Position())
	if val != nil {
		ret.Span = logging.SpanOver(start.Position(), val.Position())
	}

	return ret
}

// -----------------------------------------------------------------------------

// expr = and_expr {'||' and_expr}
// and_expr = eq_expr {'&&' eq_expr}
// eq_expr = rel_expr {('==' | '!=') rel_expr}
// rel_expr = add_expr {('<' | '<=' | '>' | '>=') add_expr}
// add_expr = mul_expr {('+' | '-') mul_expr}
// mul_expr = unary {('*' | '/' | '%') unary}
func (p *Parser) parseExpr() Expr {
	return p.parseBinary(0)
}

// parseBinary parses a left-associative binary expression whose operators are
// those of the given precedence level.
func (p *Parser) parseBinary(level int) Expr {
	if level == len(binaryOpLevels) {
		return p.parseUnary()
	}

	lhs := p.parseBinary(level + 1)
	for p.gotOneOf(binaryOpLevels[level]...) {
		op := p.tok.Kind
		p.next()

		rhs := p.parseBinary(level + 1)
		lhs = &Binary{
			span:  span{logging.SpanOver(lhs.Position(), rhs.Position())},
			Op:    op,
			Left:  lhs,
			Right: rhs,
		}
	}

	return lhs
}

// unary = ('!' | '-') unary | atom
func (p *Parser) parseUnary() Expr {
	if p.gotOneOf(NOT, MINUS) {
		opTok := p.tok
		p.next()

		operand := p.parseUnary()
		return &Unary{
			span:    span{logging.SpanOver(opTok.Position(), operand.Position())},
			Op:      opTok.Kind,
			Operand: operand,
		}
	}

	return p.parseAtom()
}

// atom = INTLIT | FLOATLIT | 'true' | 'false'
//
//	| IDENT ['(' [expr {',' expr}] ')']
//	| '(' expr ')'
func (p *Parser) parseAtom() Expr {
	switch p.tok.Kind {
	case INTLIT, FLOATLIT, TRUE, FALSE:
		tok := p.tok
		p.next()

		return &Lit{
			span: span{tok.Position()},
			Kind: kindOfToken(tok),
			Text: tok.Value,
		}
	case IDENTIFIER:
		name := p.tok
		p.next()

		ident := &Ident{span: span{name.Position()}, Name: name.Value}
		if !p.got(LPAREN) {
			return ident
		}

		p.next()

		var args []Expr
		if !p.got(RPAREN) {
			if !p.gotOneOf(exprStarts...) {
				p.reject(withKind(exprStarts, RPAREN)...)
			}

			for {
				args = append(args, p.parseExpr())

				if p.got(COMMA) {
					p.next()
				} else {
					break
				}
			}
		}

		if !p.got(RPAREN) {
			p.reject(append(binaryOperators(), COMMA, RPAREN)...)
		}

		end := p.want(RPAREN)
		return &Call{
			span: span{logging.SpanOver(name.Position(), end.Position())},
			Func: ident,
			Args: args,
		}
	case LPAREN:
		p.next()
		e := p.parseExpr()
		p.wantAfterExpr(RPAREN)
		return e
	}

	p.reject(exprStarts...)
	return nil
}

// -----------------------------------------------------------------------------

// kindOfToken returns the value kind denoted by a type keyword or literal token
func kindOfToken(tok *Token) value.Kind {
	switch tok.Kind {
	case BOOLEAN, TRUE, FALSE:
		return value.Boolean{}
	case INT, INTLIT:
		return value.Int{}
	case FLOAT, FLOATLIT:
		return value.Float{}
	default:
		return value.Void{}
	}
}
