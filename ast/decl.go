package ast

import (
	"strings"

	"just/value"
)

// Program is the root of a program tree.  Its children are the top level
// declarations in source order.
type Program struct {
	container

	Name string
}

// NewProgram creates a new, empty program.
func NewProgram(name string) *Program {
	return &Program{Name: name}
}

func (p *Program) Render(depth int) string {
	return p.render(defaultPrinter, depth)
}

func (p *Program) render(pr *Printer, depth int) string {
	return pr.indentAll(pr.frame("program "+p.Name+" {", p.renderChildren(pr)), depth)
}

// -----------------------------------------------------------------------------

// Param is a single function parameter.
type Param struct {
	Name string
	Kind value.Kind
}

// Function is a function declaration.  Its children are the statements of its
// body.
type Function struct {
	container

	Name    string
	Returns value.Kind
	Params  []Param
}

// NewFunction creates a new function with an empty body and no parameters.
func NewFunction(name string, returns value.Kind) *Function {
	return &Function{Name: name, Returns: returns}
}

// AddParam appends a parameter to the function's parameter list.
func (f *Function) AddParam(name string, kind value.Kind) {
	f.Params = append(f.Params, Param{Name: name, Kind: kind})
}

func (f *Function) Render(depth int) string {
	return f.render(defaultPrinter, depth)
}

func (f *Function) render(p *Printer, depth int) string {
	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		params[i] = param.Kind.Keyword() + " " + param.Name
	}

	head := f.Returns.Keyword() + " " + f.Name + "(" + strings.Join(params, ", ") + ") {"
	return p.indentAll(p.frame(head, f.renderChildren(p)), depth)
}

// -----------------------------------------------------------------------------

// VarDecl is a variable declaration with an optional initial value.
type VarDecl struct {
	leaf

	Name string
	Kind value.Kind

	// Value is the initial value.  It is nil if the variable is declared
	// without one.
	Value value.Literal
}

// NewVarDecl creates a new variable declaration.  The value may be nil.
func NewVarDecl(name string, kind value.Kind, v value.Literal) *VarDecl {
	return &VarDecl{Name: name, Kind: kind, Value: v}
}

func (vd *VarDecl) Render(depth int) string {
	return vd.render(defaultPrinter, depth)
}

func (vd *VarDecl) render(p *Printer, depth int) string {
	if vd.Value == nil {
		return p.indentAll(vd.Kind.Keyword()+" "+vd.Name+";", depth)
	}

	return p.indentAll(vd.Kind.Keyword()+" "+vd.Name+" = "+vd.Value.String()+";", depth)
}

// Raw is a verbatim text fragment.  It is a terminal leaf and renders exactly
// as stored regardless of depth; its parent indents it with the rest of the
// enclosing block.
type Raw struct {
	leaf

	Text string
}

// NewRaw creates a new raw text fragment.
func NewRaw(text string) *Raw {
	return &Raw{Text: text}
}

func (r *Raw) Render(int) string {
	return r.Text
}

func (r *Raw) render(*Printer, int) string {
	return r.Text
}
