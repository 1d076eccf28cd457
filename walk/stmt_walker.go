package walk

import (
	"just/syntax"
	"just/value"
)

// walkStmt walks a single statement
func (w *Walker) walkStmt(stmt syntax.Stmt) {
	switch v := stmt.(type) {
	case *syntax.VarDecl:
		w.walkVarDecl(v)
	case *syntax.Assign:
		w.walkAssign(v)
	case *syntax.If:
		w.walkExpr(v.Cond)
		w.walkBlock("if", v.Then)

		if v.Else != nil {
			w.walkBlock("else", v.Else)
		}
	case *syntax.While:
		w.walkExpr(v.Cond)
		w.walkBlock("while", v.Body)
	case *syntax.Return:
		w.walkReturn(v)
	}
}

// walkAssign walks an assignment
func (w *Walker) walkAssign(a *syntax.Assign) {
	w.walkExpr(a.Value)

	sym, ok := w.lookup(a.Target.Name)
	if !ok {
		w.logError(a.Target.Position(), "undeclared name: `%s`", a.Target.Name)
		return
	}

	if sym.IsFunc() {
		w.logError(a.Target.Position(), "cannot assign to function `%s`", sym.Name)
		return
	}

	sym.Initialized = true
}

// walkReturn checks that a return statement agrees with the return kind of
// its function
func (w *Walker) walkReturn(r *syntax.Return) {
	if r.Value != nil {
		w.walkExpr(r.Value)
	}

	if w.fn == nil {
		return
	}

	isVoid := value.IsVoid(w.fn.Returns)
	if isVoid && r.Value != nil {
		w.logError(r.Position(), "void function `%s` cannot return a value", w.fn.Name)
	} else if !isVoid && r.Value == nil {
		w.logError(r.Position(), "function `%s` must return a value of kind %s", w.fn.Name, w.fn.Returns.Keyword())
	}
}
