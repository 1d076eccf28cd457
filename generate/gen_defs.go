package generate

import (
	"just/syntax"
	"just/value"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
)

// genFuncSignature generates the LLVM function of a function definition
// without its body.
func (g *Generator) genFuncSignature(fd *syntax.FuncDecl) {
	if fd.Name == InitFuncName {
		raise(fd.NamePos, "`%s` is reserved for the initialization function", fd.Name)
	}

	if _, ok := g.funcs[fd.Name]; ok {
		raise(fd.NamePos, "function `%s` is defined multiple times", fd.Name)
	}

	params := make([]*ir.Param, len(fd.Params))
	for i, param := range fd.Params {
		params[i] = ir.NewParam(param.Name, convKind(param.Kind))
	}

	g.funcs[fd.Name] = g.mod.NewFunc(fd.Name, convKind(fd.Returns), params...)
}

// genFuncBody generates the body of a function.
func (g *Generator) genFuncBody(fd *syntax.FuncDecl) {
	g.enclosingFunc = g.funcs[fd.Name]
	g.entry = g.enclosingFunc.NewBlock("entry")
	g.block = g.entry
	g.localCounter = 0

	g.pushScope()

	// parameters are spilled to the stack so that they can be assigned to like
	// any other variable
	for _, param := range g.enclosingFunc.Params {
		v := g.defineLocal(param.Name(), param.Typ)
		g.block.NewStore(param, v.ptr)
	}

	g.genBlock(fd.Body)

	// close the last block: falling off the end of a void function returns
	if g.block.Term == nil {
		if value.IsVoid(fd.Returns) {
			g.block.NewRet(nil)
		} else {
			g.block.NewUnreachable()
		}
	}

	g.popScope()

	g.enclosingFunc = nil
	g.entry = nil
	g.block = nil
}

// genGlobalVar generates a global variable.  Globals whose initializer is
// constant are initialized statically; all others are zero initialized and
// assigned in the initialization function.
func (g *Generator) genGlobalVar(vd *syntax.VarDecl) {
	if vd.Name == InitFuncName {
		raise(vd.NamePos, "`%s` is reserved for the initialization function", vd.Name)
	}

	if _, ok := g.globalScope[vd.Name]; ok {
		raise(vd.NamePos, "global `%s` is defined multiple times", vd.Name)
	}

	initVal := zeroValue(vd.Kind)
	isConst := vd.Init == nil
	if vd.Init != nil {
		if c, ok := g.constExpr(vd.Init); ok {
			g.checkKind(vd.Init, kindOfType(c.Type()), vd.Kind)
			initVal = c
			isConst = true
		}
	}

	glob := g.mod.NewGlobalDef(vd.Name, initVal)
	v := llvmVar{ptr: glob, elemType: convKind(vd.Kind)}

	if !isConst {
		// the initializer is evaluated before the variable is visible
		g.inInit(func() {
			val := g.genExpr(vd.Init)
			g.checkKind(vd.Init, kindOfType(val.Type()), vd.Kind)
			g.block.NewStore(val, glob)
		})
	}

	g.globalScope[vd.Name] = v
}

// constExpr evaluates a literal or a negated numeric literal as a constant.
func (g *Generator) constExpr(expr syntax.Expr) (constant.Constant, bool) {
	switch v := expr.(type) {
	case *syntax.Lit:
		return convLiteral(g.literal(v)), true
	case *syntax.Unary:
		if lit, ok := g.negatedLiteral(v); ok {
			return convLiteral(lit), true
		}
	}

	return nil, false
}

// negatedLiteral evaluates a numeric literal directly preceded by `-`.  The
// sign is parsed along with the digits so the most negative int is in range.
func (g *Generator) negatedLiteral(u *syntax.Unary) (value.Literal, bool) {
	lit, ok := u.Operand.(*syntax.Lit)
	if !ok || u.Op != syntax.MINUS {
		return nil, false
	}

	switch lit.Kind.(type) {
	case value.Int, value.Float:
		v, err := value.Parse(lit.Kind, "-"+lit.Text)
		if err != nil {
			raise(u.Position(), "%s", err)
		}

		return v, true
	}

	return nil, false
}

// literal evaluates a literal.
func (g *Generator) literal(lit *syntax.Lit) value.Literal {
	v, err := lit.Value()
	if err != nil {
		raise(lit.Position(), "%s", err)
	}

	return v
}
