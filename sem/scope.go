package sem

// Scope is a nested lexical region: a program, a function or a block.
type Scope struct {
	Name string

	// Level is the nesting depth of the scope: the outermost scope is at 0
	Level int

	NrOfParams int
	NrOfLocals int

	// Params and Locals are kept in declaration order
	Params []*Symbol
	Locals []*Symbol

	// Outer is the enclosing scope or nil at level 0
	Outer *Scope
}

// lookup looks up a symbol in this scope only.  Local symbols shadow
// parameters and later declarations shadow earlier ones.
func (s *Scope) lookup(name string) (*Symbol, bool) {
	for i := len(s.Locals) - 1; i > -1; i-- {
		if s.Locals[i].Name == name {
			return s.Locals[i], true
		}
	}

	// check for parameters after local symbols so local symbols can
	// effectively shadow those parameters
	for i := len(s.Params) - 1; i > -1; i-- {
		if s.Params[i].Name == name {
			return s.Params[i], true
		}
	}

	return nil, false
}
