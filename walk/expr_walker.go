package walk

import (
	"just/sem"
	"just/syntax"
)

// walkExpr resolves every name used in an expression
func (w *Walker) walkExpr(expr syntax.Expr) {
	switch v := expr.(type) {
	case *syntax.Ident:
		sym, ok := w.lookup(v.Name)
		if !ok {
			w.logError(v.Position(), "undeclared name: `%s`", v.Name)
		} else if sym.IsFunc() {
			w.logError(v.Position(), "function `%s` cannot be used as a value", v.Name)
		} else if !sym.Initialized && sym.DefKind == sem.DefKindValueDef {
			w.logWarning(v.Position(), "`%s` may be used before it is assigned", v.Name)
		}
	case *syntax.Unary:
		w.walkExpr(v.Operand)
	case *syntax.Binary:
		w.walkExpr(v.Left)
		w.walkExpr(v.Right)
	case *syntax.Call:
		w.walkCall(v)
	}
}

// walkCall resolves the function and arguments of a call
func (w *Walker) walkCall(call *syntax.Call) {
	for _, arg := range call.Args {
		w.walkExpr(arg)
	}

	sym, ok := w.lookup(call.Func.Name)
	if !ok {
		w.logError(call.Func.Position(), "undeclared name: `%s`", call.Func.Name)
		return
	}

	if !sym.IsFunc() {
		w.logError(call.Func.Position(), "`%s` is not a function", sym.Name)
		return
	}

	if len(call.Args) != len(sym.Params) {
		w.logError(
			call.Position(),
			"function `%s` expects %d argument(s) but got %d",
			sym.Name,
			len(sym.Params),
			len(call.Args),
		)
	}
}
