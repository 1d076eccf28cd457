package ast

import "just/value"

// Block is an anonymous, ordered statement sequence: the branches of an if
// block are blocks.  A block renders only its statements, one per line, with
// no framing of its own.
type Block struct {
	container
}

// NewBlock creates a new empty block.
func NewBlock() *Block {
	return &Block{}
}

func (b *Block) Render(depth int) string {
	return b.render(defaultPrinter, depth)
}

func (b *Block) render(p *Printer, depth int) string {
	return b.renderChildrenAt(p, depth)
}

// -----------------------------------------------------------------------------

// VarAssign assigns a new value to a previously declared variable.
type VarAssign struct {
	leaf

	Target *VarDecl
	Value  value.Literal
}

// NewVarAssign creates a new assignment to the given declaration.
func NewVarAssign(target *VarDecl, v value.Literal) *VarAssign {
	return &VarAssign{Target: target, Value: v}
}

func (va *VarAssign) Render(depth int) string {
	return va.render(defaultPrinter, depth)
}

func (va *VarAssign) render(p *Printer, depth int) string {
	return p.indentAll(va.Target.Name+" = "+va.Value.String()+";", depth)
}

// -----------------------------------------------------------------------------

// IfBlock is a conditional with a mandatory then block and an optional else
// block.  Appending to an if block appends to its then block.
type IfBlock struct {
	nodeBase

	// Cond is the condition as raw expression text.
	Cond string

	Then *Block
	Else *Block
}

// NewIfBlock creates a new if block with an empty then block and no else
// block.
func NewIfBlock(cond string) *IfBlock {
	return &IfBlock{Cond: cond, Then: NewBlock()}
}

func (ib *IfBlock) AddRaw(raw string) error {
	return ib.Then.AddRaw(raw)
}

func (ib *IfBlock) AddNode(n Node) error {
	return ib.Then.AddNode(n)
}

// SetElse attaches an else block.  An if block can have at most one.
func (ib *IfBlock) SetElse(b *Block) error {
	if b == nil {
		return ErrNilNode
	}

	if ib.Else != nil || !b.attach() {
		return ErrAlreadyAttached
	}

	ib.Else = b
	return nil
}

func (ib *IfBlock) Render(depth int) string {
	return ib.render(defaultPrinter, depth)
}

func (ib *IfBlock) render(p *Printer, depth int) string {
	var then string
	if ib.Then != nil {
		then = ib.Then.render(p, 1)
	}

	text := p.frame("if ("+ib.Cond+") {", then)
	if ib.Else != nil {
		text += p.frame(" else {", ib.Else.render(p, 1))
	}

	return p.indentAll(text, depth)
}

// -----------------------------------------------------------------------------

// WhileLoop is a loop whose children are the statements of its body.
type WhileLoop struct {
	container

	// Cond is the condition as raw expression text.
	Cond string
}

// NewWhileLoop creates a new while loop with an empty body.
func NewWhileLoop(cond string) *WhileLoop {
	return &WhileLoop{Cond: cond}
}

func (wl *WhileLoop) Render(depth int) string {
	return wl.render(defaultPrinter, depth)
}

func (wl *WhileLoop) render(p *Printer, depth int) string {
	return p.indentAll(p.frame("while ("+wl.Cond+") {", wl.renderChildren(p)), depth)
}

// -----------------------------------------------------------------------------

// Return is a return statement.  It returns either a literal, a variable
// reference, or nothing (Void functions).
type Return struct {
	leaf

	Value value.Literal
	Ref   *VarDecl
}

// NewReturn creates a return of the given literal.  A nil literal produces a
// bare `return;`.
func NewReturn(v value.Literal) *Return {
	return &Return{Value: v}
}

// NewReturnRef creates a return of the value of a declared variable.
func NewReturnRef(ref *VarDecl) *Return {
	return &Return{Ref: ref}
}

func (r *Return) Render(depth int) string {
	return r.render(defaultPrinter, depth)
}

func (r *Return) render(p *Printer, depth int) string {
	switch {
	case r.Ref != nil:
		return p.indentAll("return "+r.Ref.Name+";", depth)
	case r.Value != nil:
		return p.indentAll("return "+r.Value.String()+";", depth)
	default:
		return p.indentAll("return;", depth)
	}
}
