package sem

import (
	"errors"

	"just/logging"
)

// ErrNoScope is returned when an operation needs a current scope and there is
// none.
var ErrNoScope = errors.New("no scope available")

// Table is a stack of nested scopes used to register declared symbols while
// walking a program.  It is not safe for concurrent use: a table belongs to a
// single pass.
type Table struct {
	current *Scope
	depth   int

	// logger receives misuse of the table.  It may be nil.
	logger *logging.Logger
}

// NewTable creates a new, empty symbol table
func NewTable(logger *logging.Logger) *Table {
	return &Table{logger: logger}
}

// EnterScope pushes a new scope which becomes the current scope
func (t *Table) EnterScope(name string) *Scope {
	level := 0
	if t.current != nil {
		level = t.current.Level + 1
	}

	t.current = &Scope{Name: name, Level: level, Outer: t.current}
	t.depth++
	return t.current
}

// LeaveScope pops the current scope and returns it.  Its enclosing scope
// becomes the current scope.
func (t *Table) LeaveScope() (*Scope, error) {
	if t.current == nil {
		return nil, t.misuse("leave scope")
	}

	popped := t.current
	t.current = popped.Outer
	t.depth--
	return popped, nil
}

// Insert appends a symbol to the locals of the current scope
func (t *Table) Insert(sym *Symbol) error {
	if t.current == nil {
		return t.misuse("insert `" + sym.Name + "`")
	}

	t.current.Locals = append(t.current.Locals, sym)
	t.current.NrOfLocals++
	return nil
}

// InsertParam appends a symbol to the parameters of the current scope
func (t *Table) InsertParam(sym *Symbol) error {
	if t.current == nil {
		return t.misuse("insert parameter `" + sym.Name + "`")
	}

	t.current.Params = append(t.current.Params, sym)
	t.current.NrOfParams++
	return nil
}

// Lookup resolves a name by searching the current scope and then each of
// its enclosing scopes outward.  It returns the innermost match and the scope
// it was found in.  A name that is not found is not an error: ok is false.
func (t *Table) Lookup(name string) (*Symbol, *Scope, bool) {
	for s := t.current; s != nil; s = s.Outer {
		if sym, ok := s.lookup(name); ok {
			return sym, s, true
		}
	}

	return nil, nil, false
}

// LookupLocal resolves a name in the current scope only
func (t *Table) LookupLocal(name string) (*Symbol, bool) {
	if t.current == nil {
		return nil, false
	}

	return t.current.lookup(name)
}

// Current returns the current scope or nil if there is none
func (t *Table) Current() *Scope {
	return t.current
}

// Depth returns the number of scopes on the stack
func (t *Table) Depth() int {
	return t.depth
}

// misuse reports an operation that required a current scope
func (t *Table) misuse(op string) error {
	if t.logger != nil {
		t.logger.LogFatal("symbol table: cannot %s: %s", op, ErrNoScope)
	}

	return ErrNoScope
}
