package walk

import (
	"just/logging"
	"just/sem"
	"just/syntax"
)

// Walker is the construct responsible for performing name resolution on a
// parsed file.  It drives a symbol table over the file: one scope for the
// program, one per function and one per block.  Walkers are created once per
// file and are not safe for concurrent use.
type Walker struct {
	// SrcFile is the file this walker is walking
	SrcFile *syntax.File

	// ctx identifies the file in log messages
	ctx *logging.LogContext

	// logger receives all diagnostics.  It may be nil.
	logger *logging.Logger

	table *sem.Table

	// fn is the function whose body is being walked or nil at the top level
	fn *syntax.FuncDecl

	// slot is the next free local address slot in the current function
	slot int

	diagnostics []*Diagnostic
}

// NewWalker creates a new walker for a given file.  src is the source text of
// the file and is only used to display diagnostics.
func NewWalker(f *syntax.File, src string, logger *logging.Logger) *Walker {
	return &Walker{
		SrcFile: f,
		ctx:     &logging.LogContext{FilePath: f.Path, Source: src},
		logger:  logger,
		// misuse of the table is reported by the walker with the file it
		// happened in
		table: sem.NewTable(nil),
	}
}

// Walk walks the file and returns all the diagnostics it produced in the order
// they were encountered.
func (w *Walker) Walk() []*Diagnostic {
	w.table.EnterScope(w.SrcFile.Name)

	// functions can be called before they are defined so they are all
	// declared up front
	for _, decl := range w.SrcFile.Decls {
		if fd, ok := decl.(*syntax.FuncDecl); ok {
			w.declareFunc(fd)
		}
	}

	for _, decl := range w.SrcFile.Decls {
		switch v := decl.(type) {
		case *syntax.FuncDecl:
			w.walkFuncDecl(v)
		case *syntax.VarDecl:
			w.walkVarDecl(v)
		case *syntax.Assign:
			w.walkAssign(v)
		}
	}

	w.popScope()
	return w.diagnostics
}

// Check resolves the names of a file and returns its diagnostics.
func Check(f *syntax.File, src string, logger *logging.Logger) []*Diagnostic {
	return NewWalker(f, src, logger).Walk()
}
