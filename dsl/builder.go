package dsl

import (
	"fmt"

	"just/ast"
	"just/syntax"
	"just/value"
)

// Var is a durable reference to a declared variable or parameter.  It can be
// used by later assignments and returns in the same program.
type Var struct {
	decl  *ast.VarDecl
	st    *buildState
	param bool
}

// Name returns the name of the variable.
func (v *Var) Name() string {
	return v.decl.Name
}

// Kind returns the declared kind of the variable.
func (v *Var) Kind() value.Kind {
	return v.decl.Kind
}

// Decl returns the declaration node of the variable.  Parameters have a
// declaration node that is not part of the tree.
func (v *Var) Decl() *ast.VarDecl {
	return v.decl
}

// IsParam returns whether the variable is a function parameter.
func (v *Var) IsParam() bool {
	return v.param
}

// -----------------------------------------------------------------------------

// ProgramBuilder populates the top level of a program.
type ProgramBuilder struct {
	st   *buildState
	node *ast.Program
}

// Node returns the program being built.
func (pb *ProgramBuilder) Node() *ast.Program {
	return pb.node
}

// SetName renames the program.
func (pb *ProgramBuilder) SetName(name string) {
	checkName("program", name)
	pb.node.Name = name
}

// Function declares a top level function.  An empty name produces
// `unnamedFunction`.  The body is run with a builder for the new function
// before it is attached to the program.
func (pb *ProgramBuilder) Function(returns value.Kind, name string, body func(fb *FunctionBuilder)) *ast.Function {
	pb.st.check("function")

	if name == "" {
		name = "unnamedFunction"
	}
	checkName("function", name)

	if returns == nil {
		abort("function", name, ErrNoKind)
	}

	fn := ast.NewFunction(name, returns)
	fb := &FunctionBuilder{
		BlockBuilder: BlockBuilder{st: pb.st, node: fn, fn: fn},
	}

	if body != nil {
		body(fb)
	}

	attach(pb.node, fn, "function", fn.Name)
	return fn
}

// Declare declares a top level variable.  The value may be nil.
func (pb *ProgramBuilder) Declare(kind value.Kind, name string, v value.Literal) *Var {
	return declare(pb.st, pb.node, kind, name, v)
}

// Assign assigns a new value to a declared variable at the top level.
func (pb *ProgramBuilder) Assign(v *Var, lit value.Literal) *ast.VarAssign {
	return assign(pb.st, pb.node, v, lit)
}

// Raw inserts a verbatim text fragment at the top level.
func (pb *ProgramBuilder) Raw(text string) {
	pb.st.check("raw")
	attach(pb.node, ast.NewRaw(text), "raw", "")
}

// -----------------------------------------------------------------------------

// BlockBuilder populates a statement sequence: a function body, a loop body or
// one branch of an if block.
type BlockBuilder struct {
	st   *buildState
	node ast.Node

	// fn is the enclosing function.
	fn *ast.Function
}

// Node returns the node statements are appended to.
func (bb *BlockBuilder) Node() ast.Node {
	return bb.node
}

// Declare declares a local variable.  The value may be nil.
func (bb *BlockBuilder) Declare(kind value.Kind, name string, v value.Literal) *Var {
	return declare(bb.st, bb.node, kind, name, v)
}

// Assign assigns a new value to a declared variable.
func (bb *BlockBuilder) Assign(v *Var, lit value.Literal) *ast.VarAssign {
	return assign(bb.st, bb.node, v, lit)
}

// If opens an if block whose condition is the given raw expression text.  Use
// `Else` on the result to attach an else block.
func (bb *BlockBuilder) If(cond string, then func(b *BlockBuilder)) *IfBuilder {
	bb.st.check("if")

	ifb := ast.NewIfBlock(cond)
	if then != nil {
		then(bb.nested(ifb.Then))
	}

	attach(bb.node, ifb, "if", "")
	return &IfBuilder{parent: bb, node: ifb}
}

// While opens a while loop whose condition is the given raw expression text.
// The condition is emitted verbatim.
func (bb *BlockBuilder) While(cond string, body func(b *BlockBuilder)) *ast.WhileLoop {
	bb.st.check("while")

	loop := ast.NewWhileLoop(cond)
	if body != nil {
		body(bb.nested(loop))
	}

	attach(bb.node, loop, "while", "")
	return loop
}

// Return returns a literal from the enclosing function.  The literal must be
// nil exactly when the function returns Void.
func (bb *BlockBuilder) Return(lit value.Literal) *ast.Return {
	bb.st.check("return")

	if lit == nil {
		if !value.IsVoid(bb.fn.Returns) {
			abort("return", bb.fn.Name, ErrMissingValue)
		}
	} else {
		bb.checkReturnKind(lit.Kind())
		checkLiteral("return", bb.fn.Name, lit)
	}

	ret := ast.NewReturn(lit)
	attach(bb.node, ret, "return", bb.fn.Name)
	return ret
}

// ReturnVar returns the value of a declared variable from the enclosing
// function.
func (bb *BlockBuilder) ReturnVar(v *Var) *ast.Return {
	bb.st.check("return")
	bb.st.resolve("return", v)
	bb.checkReturnKind(v.Kind())

	ret := ast.NewReturnRef(v.decl)
	attach(bb.node, ret, "return", bb.fn.Name)
	return ret
}

// Raw inserts a verbatim text fragment.  The fragment is not checked: whether
// it makes sense where it is placed is up to the grammar.
func (bb *BlockBuilder) Raw(text string) {
	bb.st.check("raw")
	attach(bb.node, ast.NewRaw(text), "raw", "")
}

// nested creates a builder for a statement sequence inside this one.
func (bb *BlockBuilder) nested(n ast.Node) *BlockBuilder {
	return &BlockBuilder{st: bb.st, node: n, fn: bb.fn}
}

// checkReturnKind aborts if a value of the given kind cannot be returned from
// the enclosing function.
func (bb *BlockBuilder) checkReturnKind(k value.Kind) {
	if value.IsVoid(bb.fn.Returns) {
		abort("return", bb.fn.Name, ErrVoidReturn)
	}

	if !value.Same(k, bb.fn.Returns) {
		abort("return", bb.fn.Name, fmt.Errorf("%w: returning %s from %s function", ErrKindMismatch, k, bb.fn.Returns))
	}
}

// -----------------------------------------------------------------------------

// FunctionBuilder populates a function: its name, parameters and body.
type FunctionBuilder struct {
	BlockBuilder
}

// Function returns the function being built.
func (fb *FunctionBuilder) Function() *ast.Function {
	return fb.fn
}

// SetName renames the function.
func (fb *FunctionBuilder) SetName(name string) {
	checkName("function", name)
	fb.fn.Name = name
}

// Param appends a parameter to the function.  The returned reference can be
// assigned to and returned like any other variable.
func (fb *FunctionBuilder) Param(kind value.Kind, name string) *Var {
	fb.st.check("param")

	if name == "" {
		name = "unnamedVariable"
	}
	checkName("param", name)

	if kind == nil {
		abort("param", name, ErrNoKind)
	} else if value.IsVoid(kind) {
		abort("param", name, ErrVoidVariable)
	}

	fb.fn.AddParam(name, kind)

	v := &Var{decl: ast.NewVarDecl(name, kind, nil), st: fb.st, param: true}
	fb.st.vars[v.decl] = struct{}{}
	return v
}

// -----------------------------------------------------------------------------

// IfBuilder is returned by `If` so an else block can be chained onto it.
type IfBuilder struct {
	parent *BlockBuilder
	node   *ast.IfBlock
}

// Node returns the if block.
func (ib *IfBuilder) Node() *ast.IfBlock {
	return ib.node
}

// Else attaches an else block to the if block.
func (ib *IfBuilder) Else(body func(b *BlockBuilder)) *IfBuilder {
	ib.parent.st.check("else")

	elze := ast.NewBlock()
	if body != nil {
		body(ib.parent.nested(elze))
	}

	if err := ib.node.SetElse(elze); err != nil {
		abort("else", "", err)
	}

	return ib
}

// -----------------------------------------------------------------------------

// declare builds a variable declaration and attaches it to parent.
func declare(st *buildState, parent ast.Node, kind value.Kind, name string, lit value.Literal) *Var {
	st.check("declare")

	if name == "" {
		name = "unnamedVariable"
	}
	checkName("declare", name)

	if kind == nil {
		abort("declare", name, ErrNoKind)
	} else if value.IsVoid(kind) {
		abort("declare", name, ErrVoidVariable)
	}

	if lit != nil {
		if !value.Same(lit.Kind(), kind) {
			abort("declare", name, fmt.Errorf("%w: %s value for %s variable", ErrKindMismatch, lit.Kind(), kind))
		}

		checkLiteral("declare", name, lit)
	}

	decl := ast.NewVarDecl(name, kind, lit)
	attach(parent, decl, "declare", name)

	st.vars[decl] = struct{}{}
	return &Var{decl: decl, st: st}
}

// assign builds an assignment to a declared variable and attaches it to
// parent.
func assign(st *buildState, parent ast.Node, v *Var, lit value.Literal) *ast.VarAssign {
	st.check("assign")
	st.resolve("assign", v)

	if lit == nil {
		abort("assign", v.Name(), ErrMissingValue)
	}

	if !value.Same(lit.Kind(), v.Kind()) {
		abort("assign", v.Name(), fmt.Errorf("%w: %s value for %s variable", ErrKindMismatch, lit.Kind(), v.Kind()))
	}

	checkLiteral("assign", v.Name(), lit)

	va := ast.NewVarAssign(v.decl, lit)
	attach(parent, va, "assign", v.Name())
	return va
}

// resolve aborts if v is not a variable declared in this program.
func (st *buildState) resolve(op string, v *Var) {
	if v == nil || v.st != st {
		abort(op, "", ErrUnknownVariable)
	}

	if _, ok := st.vars[v.decl]; !ok {
		abort(op, v.Name(), ErrUnknownVariable)
	}
}

// checkLiteral aborts if the literal has no concrete syntax.
func checkLiteral(op, name string, lit value.Literal) {
	if err := value.CheckLiteral(lit); err != nil {
		abort(op, name, err)
	}
}

// checkName aborts if name is a reserved word and so cannot be used as an
// identifier.
func checkName(op, name string) {
	if syntax.IsKeyword(name) {
		abort(op, name, ErrReservedName)
	}
}

// attach appends child to parent, aborting on failure.
func attach(parent, child ast.Node, op, name string) {
	if err := parent.AddNode(child); err != nil {
		abort(op, name, err)
	}
}
