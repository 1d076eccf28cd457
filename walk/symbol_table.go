package walk

import (
	"just/sem"
)

// lookup looks up a symbol and returns it if it exists.
func (w *Walker) lookup(name string) (*sem.Symbol, bool) {
	sym, _, ok := w.table.Lookup(name)
	return sym, ok
}

// define defines a symbol in the most local scope.  It returns false and logs
// an appropriate error if a symbol of the same name is already defined there.
func (w *Walker) define(sym *sem.Symbol) bool {
	if prev, ok := w.table.LookupLocal(sym.Name); ok {
		w.logRepeatDef(sym, prev)
		return false
	}

	if sym.DefKind != sem.DefKindFuncDef {
		sym.Addr = w.slot
		w.slot++
	}

	if sym.DefKind == sem.DefKindParamDef {
		w.checkTable(w.table.InsertParam(sym))
	} else {
		w.checkTable(w.table.Insert(sym))
	}

	return true
}

// logRepeatDef logs a redeclaration of a symbol
func (w *Walker) logRepeatDef(sym, prev *sem.Symbol) {
	if prev.Position != nil {
		w.logError(
			sym.Position,
			"`%s` is already declared in this scope (at line %d)",
			sym.Name,
			prev.Position.StartLn,
		)
	} else {
		w.logError(sym.Position, "`%s` is already declared in this scope", sym.Name)
	}
}

// pushScope enters a new nested scope
func (w *Walker) pushScope(name string) {
	w.table.EnterScope(name)
}

// popScope leaves the current scope
func (w *Walker) popScope() {
	_, err := w.table.LeaveScope()
	w.checkTable(err)
}
