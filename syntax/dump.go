package syntax

import (
	"fmt"

	"github.com/disiqueira/gotree"
)

// Dump renders the parse tree of a file as an indented tree for display
func Dump(f *File) string {
	root := gotree.New("program " + f.Name)

	for _, decl := range f.Decls {
		switch v := decl.(type) {
		case *FuncDecl:
			fn := root.Add(fmt.Sprintf("func %s %s", v.Returns.Keyword(), v.Name))
			if len(v.Params) > 0 {
				params := fn.Add("params")
				for _, param := range v.Params {
					params.Add(fmt.Sprintf("%s %s", param.Kind.Keyword(), param.Name))
				}
			}

			dumpBlock(fn.Add("body"), v.Body)
		case Stmt:
			dumpStmt(root, v)
		}
	}

	return root.Print()
}

func dumpBlock(parent gotree.Tree, b *Block) {
	for _, stmt := range b.Stmts {
		dumpStmt(parent, stmt)
	}
}

func dumpStmt(parent gotree.Tree, stmt Stmt) {
	switch v := stmt.(type) {
	case *VarDecl:
		node := parent.Add(fmt.Sprintf("var %s %s", v.Kind.Keyword(), v.Name))
		if v.Init != nil {
			dumpExpr(node, v.Init)
		}
	case *Assign:
		dumpExpr(parent.Add("assign "+v.Target.Name), v.Value)
	case *If:
		node := parent.Add("if")
		dumpExpr(node.Add("cond"), v.Cond)
		dumpBlock(node.Add("then"), v.Then)

		if v.Else != nil {
			dumpBlock(node.Add("else"), v.Else)
		}
	case *While:
		node := parent.Add("while")
		dumpExpr(node.Add("cond"), v.Cond)
		dumpBlock(node.Add("body"), v.Body)
	case *Return:
		node := parent.Add("return")
		if v.Value != nil {
			dumpExpr(node, v.Value)
		}
	}
}

func dumpExpr(parent gotree.Tree, e Expr) {
	switch v := e.(type) {
	case *Ident:
		parent.Add(v.Name)
	case *Lit:
		parent.Add(fmt.Sprintf("%s %s", v.Kind.Keyword(), v.Text))
	case *Unary:
		dumpExpr(parent.Add(OpSymbol(v.Op)), v.Operand)
	case *Binary:
		node := parent.Add(OpSymbol(v.Op))
		dumpExpr(node, v.Left)
		dumpExpr(node, v.Right)
	case *Call:
		node := parent.Add("call " + v.Func.Name)
		for _, arg := range v.Args {
			dumpExpr(node, arg)
		}
	}
}
