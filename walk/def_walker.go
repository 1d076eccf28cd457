package walk

import (
	"just/sem"
	"just/syntax"
	"just/value"
)

// declareFunc declares the symbol of a function in the program scope
func (w *Walker) declareFunc(fd *syntax.FuncDecl) {
	params := make([]value.Kind, len(fd.Params))
	for i, param := range fd.Params {
		params[i] = param.Kind
	}

	w.define(sem.NewFunction(fd.Name, fd.Returns, params, fd.NamePos))
}

// walkFuncDecl walks the body of a function in its own scope
func (w *Walker) walkFuncDecl(fd *syntax.FuncDecl) {
	w.fn = fd
	w.slot = 0
	w.pushScope(fd.Name)

	for _, param := range fd.Params {
		w.define(sem.NewParam(param.Name, param.Kind, param.Position()))
	}

	// the body shares the scope of the parameters: a local cannot redeclare a
	// parameter
	w.walkStmts(fd.Body.Stmts)

	w.popScope()
	w.fn = nil
}

// walkVarDecl walks a variable declaration (global or local)
func (w *Walker) walkVarDecl(vd *syntax.VarDecl) {
	// the initializer is walked first: a variable is not in scope in its own
	// initializer
	if vd.Init != nil {
		w.walkExpr(vd.Init)
	}

	sym := sem.NewVariable(vd.Name, vd.Kind, vd.NamePos)

	// globals are zero initialized
	sym.Initialized = vd.Init != nil || w.fn == nil

	if lit, ok := vd.Init.(*syntax.Lit); ok {
		if v, err := lit.Value(); err == nil {
			sym.Value = numericValue(v)
		}
	}

	w.define(sym)
}

// numericValue converts a literal into the numeric value slot of a symbol.
// Floats are truncated.
func numericValue(lit value.Literal) int64 {
	switch v := lit.(type) {
	case value.BoolLit:
		if v {
			return 1
		}
	case value.IntLit:
		return int64(v)
	case value.FloatLit:
		return int64(v)
	}

	return 0
}
