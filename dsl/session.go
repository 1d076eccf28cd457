package dsl

import (
	"just/ast"
	"just/logging"
)

// Session is the caller-owned context a program is built in.  Sessions hold
// no per-program state so one session can build any number of programs, but
// like the trees they build they are not safe for concurrent use.
type Session struct {
	// Printer renders the programs built by `Program`.
	Printer *ast.Printer

	// Logger receives build failures.  It may be nil.
	Logger *logging.Logger
}

// NewSession creates a session that renders with the default indentation.
func NewSession() *Session {
	return &Session{Printer: &ast.Printer{Indent: ast.Indent}}
}

// NewSessionWith creates a session rendering with the given indentation unit
// and reporting to the given logger.
func NewSessionWith(indent string, logger *logging.Logger) *Session {
	return &Session{Printer: &ast.Printer{Indent: indent}, Logger: logger}
}

// Build constructs a program.  The body is run with a builder for the new
// program; if any builder operation fails, construction stops and the error is
// returned along with a nil program.
func (s *Session) Build(name string, body func(pb *ProgramBuilder)) (prog *ast.Program, err error) {
	defer catchBuildErrors(&err)

	if name == "" {
		name = "unnamedProgram"
	}
	checkName("program", name)

	st := &buildState{vars: make(map[*ast.VarDecl]struct{})}
	pb := &ProgramBuilder{st: st, node: ast.NewProgram(name)}

	if body != nil {
		body(pb)
	}

	st.done = true
	return pb.node, nil
}

// Program builds a program and renders it with the session's printer.
func (s *Session) Program(name string, body func(pb *ProgramBuilder)) (string, error) {
	prog, err := s.Build(name, body)
	if err != nil {
		if s.Logger != nil {
			s.Logger.LogStdError("Build", err)
		}

		return "", err
	}

	printer := s.Printer
	if printer == nil {
		printer = &ast.Printer{}
	}

	return printer.Render(prog), nil
}

// Build constructs a program in a fresh session.
func Build(name string, body func(pb *ProgramBuilder)) (*ast.Program, error) {
	return NewSession().Build(name, body)
}

// Program builds and renders a program in a fresh session.
func Program(name string, body func(pb *ProgramBuilder)) (string, error) {
	return NewSession().Program(name, body)
}

// -----------------------------------------------------------------------------

// buildState is the state shared by all the builders of one program.
type buildState struct {
	// vars is the set of declarations (and parameters) made in this program.
	vars map[*ast.VarDecl]struct{}

	// done is set once the program is complete.
	done bool
}

// check aborts if the program this state belongs to is already built.
func (st *buildState) check(op string) {
	if st.done {
		abort(op, "", ErrBuildFinished)
	}
}
