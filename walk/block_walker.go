package walk

import "just/syntax"

// walkStmts walks a sequence of statements in the current scope
func (w *Walker) walkStmts(stmts []syntax.Stmt) {
	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
}

// walkBlock walks a nested block in its own scope
func (w *Walker) walkBlock(name string, b *syntax.Block) {
	w.pushScope(name)
	w.walkStmts(b.Stmts)
	w.popScope()
}
