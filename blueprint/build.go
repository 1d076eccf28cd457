package blueprint

import (
	"errors"
	"fmt"

	"just/ast"
	"just/dsl"
	"just/value"
)

// Errors in blueprints.  They are wrapped with the location of the failing
// entry.
var (
	ErrUnknownOp       = errors.New("unknown statement op")
	ErrUnknownVariable = errors.New("undeclared variable")
	ErrInvalidValue    = errors.New("invalid value")
)

// Build constructs the program described by the blueprint in the given
// session.  Both blueprint errors and builder errors (`*dsl.BuildError`) are
// returned.
func (bp *Blueprint) Build(s *dsl.Session) (prog *ast.Program, err error) {
	defer catchErrors(&err)

	return s.Build(bp.Name, func(pb *dsl.ProgramBuilder) {
		b := &builder{}
		b.pushScope()

		for i, g := range bp.Globals {
			at := fmt.Sprintf("globals[%d]", i)
			kind := resolveKind(at, g.Kind)
			b.define(pb.Declare(kind, g.Name, b.literal(at, kind, g.Value)))
		}

		for i, a := range bp.Assigns {
			at := fmt.Sprintf("assigns[%d]", i)
			v := b.lookup(at, a.Name)
			pb.Assign(v, b.literal(at, v.Kind(), a.Value))
		}

		for i, fn := range bp.Functions {
			b.buildFunction(pb, fmt.Sprintf("functions[%d]", i), fn)
		}

		for _, raw := range bp.Raw {
			pb.Raw(raw)
		}
	})
}

// Render builds the program described by the blueprint and renders it with
// the session's printer.
func (bp *Blueprint) Render(s *dsl.Session) (string, error) {
	prog, err := bp.Build(s)
	if err != nil {
		if s.Logger != nil {
			s.Logger.LogStdError("Blueprint", err)
		}

		return "", err
	}

	printer := s.Printer
	if printer == nil {
		printer = &ast.Printer{Indent: ast.Indent}
	}

	return printer.Render(prog), nil
}

// -----------------------------------------------------------------------------

// builder keeps track of the variables declared while a blueprint is built so
// statements can refer to them by name.
type builder struct {
	scopes []map[string]*dsl.Var

	// returns is the return kind of the function being built.
	returns value.Kind
}

func (b *builder) pushScope() {
	b.scopes = append(b.scopes, make(map[string]*dsl.Var))
}

func (b *builder) popScope() {
	b.scopes = b.scopes[:len(b.scopes)-1]
}

func (b *builder) define(v *dsl.Var) {
	b.scopes[len(b.scopes)-1][v.Name()] = v
}

// lookup finds the innermost variable with the given name.
func (b *builder) lookup(at, name string) *dsl.Var {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		if v, ok := b.scopes[i][name]; ok {
			return v
		}
	}

	fail(at, fmt.Errorf("%w `%s`", ErrUnknownVariable, name))
	return nil
}

// literal parses the text of a value.  An empty text is no value.
func (b *builder) literal(at string, kind value.Kind, text string) value.Literal {
	if text == "" {
		return nil
	}

	lit, err := value.Parse(kind, text)
	if err != nil {
		fail(at, fmt.Errorf("%w %q: %s", ErrInvalidValue, text, err))
	}

	return lit
}

func (b *builder) buildFunction(pb *dsl.ProgramBuilder, at string, fn *Function) {
	returns := value.Kind(value.Void{})
	if fn.Returns != "" {
		returns = resolveKind(at, fn.Returns)
	}

	b.returns = returns
	pb.Function(returns, fn.Name, func(fb *dsl.FunctionBuilder) {
		b.pushScope()
		defer b.popScope()

		for i, p := range fn.Params {
			b.define(fb.Param(resolveKind(fmt.Sprintf("%s.params[%d]", at, i), p.Kind), p.Name))
		}

		b.buildStmts(&fb.BlockBuilder, at+".body", fn.Body)
	})
}

func (b *builder) buildStmts(bb *dsl.BlockBuilder, at string, stmts []*Stmt) {
	for i, stmt := range stmts {
		b.buildStmt(bb, fmt.Sprintf("%s[%d]", at, i), stmt)
	}
}

// nested returns a function building stmts in a new scope.
func (b *builder) nested(at string, stmts []*Stmt) func(*dsl.BlockBuilder) {
	return func(bb *dsl.BlockBuilder) {
		b.pushScope()
		defer b.popScope()

		b.buildStmts(bb, at, stmts)
	}
}

func (b *builder) buildStmt(bb *dsl.BlockBuilder, at string, stmt *Stmt) {
	switch stmt.Op {
	case OpDeclare:
		kind := resolveKind(at, stmt.Kind)
		b.define(bb.Declare(kind, stmt.Name, b.literal(at, kind, stmt.Value)))
	case OpAssign:
		v := b.lookup(at, stmt.Name)
		bb.Assign(v, b.literal(at, v.Kind(), stmt.Value))
	case OpIf:
		ifb := bb.If(stmt.Cond, b.nested(at+".then", stmt.Then))
		if stmt.Else != nil {
			ifb.Else(b.nested(at+".else", stmt.Else))
		}
	case OpWhile:
		bb.While(stmt.Cond, b.nested(at+".body", stmt.Body))
	case OpReturn:
		switch {
		case stmt.Var != "":
			bb.ReturnVar(b.lookup(at, stmt.Var))
		case stmt.Value != "":
			bb.Return(b.literal(at, b.returns, stmt.Value))
		default:
			bb.Return(nil)
		}
	case OpRaw:
		bb.Raw(stmt.Text)
	default:
		fail(at, fmt.Errorf("%w %q", ErrUnknownOp, stmt.Op))
	}
}

func resolveKind(at, name string) value.Kind {
	kind, err := value.Resolve(name)
	if err != nil {
		fail(at, err)
	}

	return kind
}
