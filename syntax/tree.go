package syntax

import (
	"strings"

	"just/logging"
	"just/value"
)

// Node represents a node of the parse tree
type Node interface {
	// Position should span the entire node (meaningfully)
	Position() *logging.TextPosition
}

// Decl is a top level declaration of a program: a function, a global variable
// declaration or a global assignment
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a block
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression
type Expr interface {
	Node
	exprNode()
}

// span is the base of every node
type span struct {
	Span *logging.TextPosition
}

func (s *span) Position() *logging.TextPosition {
	return s.Span
}

// -----------------------------------------------------------------------------

// File is the root of the parse tree: a complete program
type File struct {
	span

	// Path is the (display) path of the file or empty if the source has none
	Path string

	Name    string
	NamePos *logging.TextPosition

	Decls []Decl
}

// FuncDecl is a function definition
type FuncDecl struct {
	span

	Returns value.Kind
	Name    string
	NamePos *logging.TextPosition
	Params  []*Param
	Body    *Block
}

// Param is a function parameter
type Param struct {
	span

	Kind value.Kind
	Name string
}

// VarDecl is a variable declaration with an optional initializer
type VarDecl struct {
	span

	Kind    value.Kind
	Name    string
	NamePos *logging.TextPosition

	// Init is nil if the variable is not initialized
	Init Expr
}

// Assign is an assignment to a named variable
type Assign struct {
	span

	Target *Ident
	Value  Expr
}

// Block is a braced sequence of statements
type Block struct {
	span

	Stmts []Stmt
}

// If is a conditional statement: Else is nil if there is no else block
type If struct {
	span

	Cond Expr
	Then *Block
	Else *Block
}

// While is a while loop
type While struct {
	span

	Cond Expr
	Body *Block
}

// Return is a return statement: Value is nil for a bare `return;`
type Return struct {
	span

	Value Expr
}

func (*FuncDecl) declNode() {}
func (*VarDecl) declNode()  {}
func (*Assign) declNode()   {}

func (*VarDecl) stmtNode() {}
func (*Assign) stmtNode()  {}
func (*If) stmtNode()      {}
func (*While) stmtNode()   {}
func (*Return) stmtNode()  {}

// -----------------------------------------------------------------------------

// Ident is a reference to a named variable or function
type Ident struct {
	span

	Name string
}

// Lit is a literal value
type Lit struct {
	span

	Kind value.Kind

	// Text is the literal exactly as it appeared in the source
	Text string
}

// Value converts the literal into its value.  This can only fail if a numeric
// literal is out of range.
func (l *Lit) Value() (value.Literal, error) {
	return value.Parse(l.Kind, l.Text)
}

// Unary is a prefix operator application
type Unary struct {
	span

	Op      int
	Operand Expr
}

// Binary is an infix operator application
type Binary struct {
	span

	Op          int
	Left, Right Expr
}

// Call is a function call
type Call struct {
	span

	Func *Ident
	Args []Expr
}

func (*Ident) exprNode()  {}
func (*Lit) exprNode()    {}
func (*Unary) exprNode()  {}
func (*Binary) exprNode() {}
func (*Call) exprNode()   {}

// OpSymbol returns the source symbol of an operator token kind
func OpSymbol(kind int) string {
	return strings.Trim(TokenImage(kind), `"`)
}
