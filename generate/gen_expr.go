package generate

import (
	"just/syntax"
	"just/value"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	llvalue "github.com/llir/llvm/ir/value"
)

// genExpr generates an expression and returns the value it evaluates to.
func (g *Generator) genExpr(expr syntax.Expr) llvalue.Value {
	switch v := expr.(type) {
	case *syntax.Lit:
		return convLiteral(g.literal(v))
	case *syntax.Ident:
		vr, ok := g.lookup(v.Name)
		if !ok {
			if _, isFunc := g.funcs[v.Name]; isFunc {
				raise(v.Position(), "function `%s` cannot be used as a value", v.Name)
			}

			raise(v.Position(), "undefined variable `%s`", v.Name)
		}

		return g.block.NewLoad(vr.elemType, vr.ptr)
	case *syntax.Unary:
		return g.genUnary(v)
	case *syntax.Binary:
		switch v.Op {
		case syntax.AND, syntax.OR:
			return g.genShortCircuit(v)
		default:
			return g.genBinary(v)
		}
	case *syntax.Call:
		return g.genCall(v)
	}

	// unreachable
	return nil
}

// genUnary generates a unary operator application.
func (g *Generator) genUnary(u *syntax.Unary) llvalue.Value {
	if lit, ok := g.negatedLiteral(u); ok {
		return convLiteral(lit)
	}

	operand := g.genExpr(u.Operand)

	switch kindOfType(operand.Type()).(type) {
	case value.Boolean:
		if u.Op == syntax.NOT {
			return g.block.NewXor(operand, constant.True)
		}
	case value.Int:
		if u.Op == syntax.MINUS {
			return g.block.NewSub(constant.NewInt(types.I64, 0), operand)
		}
	case value.Float:
		if u.Op == syntax.MINUS {
			return g.block.NewFNeg(operand)
		}
	}

	g.operandError(u.Operand, u.Op, operand)
	return nil
}

// genBinary generates an arithmetic or comparison operator application.  Both
// operands must be of the same kind.
func (g *Generator) genBinary(b *syntax.Binary) llvalue.Value {
	lhs := g.genExpr(b.Left)
	rhs := g.genExpr(b.Right)
	g.checkKind(b.Right, kindOfType(rhs.Type()), kindOfType(lhs.Type()))

	switch kindOfType(lhs.Type()).(type) {
	case value.Boolean:
		switch b.Op {
		case syntax.EQ:
			return g.block.NewICmp(enum.IPredEQ, lhs, rhs)
		case syntax.NEQ:
			return g.block.NewICmp(enum.IPredNE, lhs, rhs)
		}
	case value.Int:
		switch b.Op {
		case syntax.PLUS:
			return g.block.NewAdd(lhs, rhs)
		case syntax.MINUS:
			return g.block.NewSub(lhs, rhs)
		case syntax.STAR:
			return g.block.NewMul(lhs, rhs)
		case syntax.DIV:
			return g.block.NewSDiv(lhs, rhs)
		case syntax.MOD:
			return g.block.NewSRem(lhs, rhs)
		case syntax.EQ:
			return g.block.NewICmp(enum.IPredEQ, lhs, rhs)
		case syntax.NEQ:
			return g.block.NewICmp(enum.IPredNE, lhs, rhs)
		case syntax.LT:
			return g.block.NewICmp(enum.IPredSLT, lhs, rhs)
		case syntax.LTEQ:
			return g.block.NewICmp(enum.IPredSLE, lhs, rhs)
		case syntax.GT:
			return g.block.NewICmp(enum.IPredSGT, lhs, rhs)
		case syntax.GTEQ:
			return g.block.NewICmp(enum.IPredSGE, lhs, rhs)
		}
	case value.Float:
		switch b.Op {
		case syntax.PLUS:
			return g.block.NewFAdd(lhs, rhs)
		case syntax.MINUS:
			return g.block.NewFSub(lhs, rhs)
		case syntax.STAR:
			return g.block.NewFMul(lhs, rhs)
		case syntax.DIV:
			return g.block.NewFDiv(lhs, rhs)
		case syntax.MOD:
			return g.block.NewFRem(lhs, rhs)
		case syntax.EQ:
			return g.block.NewFCmp(enum.FPredOEQ, lhs, rhs)
		case syntax.NEQ:
			return g.block.NewFCmp(enum.FPredONE, lhs, rhs)
		case syntax.LT:
			return g.block.NewFCmp(enum.FPredOLT, lhs, rhs)
		case syntax.LTEQ:
			return g.block.NewFCmp(enum.FPredOLE, lhs, rhs)
		case syntax.GT:
			return g.block.NewFCmp(enum.FPredOGT, lhs, rhs)
		case syntax.GTEQ:
			return g.block.NewFCmp(enum.FPredOGE, lhs, rhs)
		}
	}

	g.operandError(b.Left, b.Op, lhs)
	return nil
}

// genShortCircuit generates `&&` and `||`.  The right operand is only
// evaluated when the left operand does not decide the result.
func (g *Generator) genShortCircuit(b *syntax.Binary) llvalue.Value {
	lhs := g.genExpr(b.Left)
	g.checkKind(b.Left, kindOfType(lhs.Type()), value.Boolean{})
	lhsBlock := g.block

	rhsBlock := g.appendBlock()
	exitBlock := g.appendBlock()

	// the result when the right operand is skipped
	var shortValue *constant.Int
	if b.Op == syntax.AND {
		g.block.NewCondBr(lhs, rhsBlock, exitBlock)
		shortValue = constant.False
	} else {
		g.block.NewCondBr(lhs, exitBlock, rhsBlock)
		shortValue = constant.True
	}

	g.block = rhsBlock
	rhs := g.genExpr(b.Right)
	g.checkKind(b.Right, kindOfType(rhs.Type()), value.Boolean{})
	g.block.NewBr(exitBlock)

	// the right operand may have created blocks of its own
	rhsEnd := g.block

	g.block = exitBlock
	return g.block.NewPhi(ir.NewIncoming(shortValue, lhsBlock), ir.NewIncoming(rhs, rhsEnd))
}

// genCall generates a function call.
func (g *Generator) genCall(call *syntax.Call) llvalue.Value {
	fn, ok := g.funcs[call.Func.Name]
	if !ok {
		raise(call.Func.Position(), "undefined function `%s`", call.Func.Name)
	}

	if len(call.Args) != len(fn.Params) {
		raise(
			call.Position(),
			"function `%s` expects %d argument(s) but got %d",
			call.Func.Name,
			len(fn.Params),
			len(call.Args),
		)
	}

	args := make([]llvalue.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i] = g.genExpr(arg)
		g.checkKind(arg, kindOfType(args[i].Type()), kindOfType(fn.Params[i].Typ))
	}

	return g.block.NewCall(fn, args...)
}

// operandError raises an error for an operator that cannot be applied to a
// value of the kind of operand.
func (g *Generator) operandError(expr syntax.Expr, op int, operand llvalue.Value) {
	raise(
		expr.Position(),
		"operator `%s` cannot be applied to a value of kind %s",
		syntax.OpSymbol(op),
		kindOfType(operand.Type()).Keyword(),
	)
}
