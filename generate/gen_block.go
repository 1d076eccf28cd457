package generate

import (
	"just/syntax"
	"just/value"

	llvalue "github.com/llir/llvm/ir/value"
)

// genBlock generates the statements of a block in the current scope.
func (g *Generator) genBlock(b *syntax.Block) {
	for _, stmt := range b.Stmts {
		g.genStmt(stmt)
	}
}

// genScopedBlock generates a block in a new local scope.
func (g *Generator) genScopedBlock(b *syntax.Block) {
	g.pushScope()
	g.genBlock(b)
	g.popScope()
}

// genStmt generates a single statement.
func (g *Generator) genStmt(stmt syntax.Stmt) {
	switch v := stmt.(type) {
	case *syntax.VarDecl:
		g.genLocalVar(v)
	case *syntax.Assign:
		g.genAssign(v)
	case *syntax.If:
		g.genIf(v)
	case *syntax.While:
		g.genWhile(v)
	case *syntax.Return:
		g.genReturn(v)
	}
}

// genLocalVar generates a local variable declaration.  Uninitialized locals
// are zeroed.
func (g *Generator) genLocalVar(vd *syntax.VarDecl) {
	typ := convKind(vd.Kind)

	var val llvalue.Value = zeroValue(vd.Kind)
	if vd.Init != nil {
		val = g.genExpr(vd.Init)
		g.checkKind(vd.Init, kindOfType(val.Type()), vd.Kind)
	}

	// the variable is defined after its initializer is generated so that the
	// initializer cannot refer to it
	v := g.defineLocal(vd.Name, typ)
	g.block.NewStore(val, v.ptr)
}

// genAssign generates an assignment.
func (g *Generator) genAssign(a *syntax.Assign) {
	v, ok := g.lookup(a.Target.Name)
	if !ok {
		raise(a.Target.Position(), "undefined variable `%s`", a.Target.Name)
	}

	val := g.genExpr(a.Value)
	g.checkKind(a.Value, kindOfType(val.Type()), kindOfType(v.elemType))
	g.block.NewStore(val, v.ptr)
}

// genReturn generates a return statement.  Statements that follow it in the
// same block are generated into a new block that is never branched to.
func (g *Generator) genReturn(r *syntax.Return) {
	retKind := kindOfType(g.enclosingFunc.Sig.RetType)

	if r.Value == nil {
		if !value.IsVoid(retKind) {
			raise(r.Position(), "missing return value of kind %s", retKind.Keyword())
		}

		g.block.NewRet(nil)
	} else {
		if value.IsVoid(retKind) {
			raise(r.Position(), "void function cannot return a value")
		}

		val := g.genExpr(r.Value)
		g.checkKind(r.Value, kindOfType(val.Type()), retKind)
		g.block.NewRet(val)
	}

	g.block = g.appendBlock()
}

// checkKind raises an error if a value of kind got is used where a value of
// kind want is required.
func (g *Generator) checkKind(expr syntax.Expr, got, want value.Kind) {
	if !value.Same(got, want) {
		raise(expr.Position(), "expected a value of kind %s but got %s", want.Keyword(), got.Keyword())
	}
}
