package generate

import (
	"just/syntax"
	"just/value"

	"github.com/llir/llvm/ir"
	llvalue "github.com/llir/llvm/ir/value"
)

// genIf generates an if statement with an optional else branch.
func (g *Generator) genIf(ifStmt *syntax.If) {
	cond := g.genCond(ifStmt.Cond)

	thenBlock := g.appendBlock()
	var elseBlock *ir.Block
	if ifStmt.Else != nil {
		elseBlock = g.appendBlock()
	}
	exitBlock := g.appendBlock()

	if elseBlock == nil {
		g.block.NewCondBr(cond, thenBlock, exitBlock)
	} else {
		g.block.NewCondBr(cond, thenBlock, elseBlock)
	}

	g.block = thenBlock
	g.genScopedBlock(ifStmt.Then)
	if g.block.Term == nil {
		g.block.NewBr(exitBlock)
	}

	if ifStmt.Else != nil {
		g.block = elseBlock
		g.genScopedBlock(ifStmt.Else)
		if g.block.Term == nil {
			g.block.NewBr(exitBlock)
		}
	}

	g.block = exitBlock
}

// genWhile generates a while loop.  The condition is evaluated in its own
// header block so that the body can branch back to it.
func (g *Generator) genWhile(whileStmt *syntax.While) {
	headerBlock := g.appendBlock()
	g.block.NewBr(headerBlock)

	g.block = headerBlock
	cond := g.genCond(whileStmt.Cond)

	bodyBlock := g.appendBlock()
	exitBlock := g.appendBlock()
	g.block.NewCondBr(cond, bodyBlock, exitBlock)

	g.block = bodyBlock
	g.genScopedBlock(whileStmt.Body)
	if g.block.Term == nil {
		g.block.NewBr(headerBlock)
	}

	g.block = exitBlock
}

// genCond generates a condition which must be a boolean.
func (g *Generator) genCond(expr syntax.Expr) llvalue.Value {
	cond := g.genExpr(expr)
	g.checkKind(expr, kindOfType(cond.Type()), value.Boolean{})
	return cond
}
