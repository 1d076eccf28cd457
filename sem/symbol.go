package sem

import (
	"just/logging"
	"just/value"
)

// Symbol represents a named symbol (globally or locally)
type Symbol struct {
	// Name is the name of the symbol (as it is referenced in source code)
	Name string

	// Kind is the value kind of the symbol: for functions, this is the return
	// kind
	Kind value.Kind

	// DefKind is the kind of definition that produced this symbol. This must
	// be one of the enumerated definition kinds below
	DefKind int

	// Params is the list of parameter kinds if the symbol is a function
	Params []value.Kind

	// Initialized indicates whether a value has been stored in the symbol
	Initialized bool

	// Value is the numeric value slot of the symbol
	Value int64

	// Addr is the numeric address slot of the symbol
	Addr int

	// Position is the text position where this symbol is defined
	Position *logging.TextPosition
}

// Enumeration of symbol definition kinds
const (
	DefKindValueDef = iota // Variables
	DefKindParamDef        // Function parameters
	DefKindFuncDef         // Function definitions
)

// NewVariable creates a symbol for a variable of the given kind
func NewVariable(name string, kind value.Kind, pos *logging.TextPosition) *Symbol {
	return &Symbol{Name: name, Kind: kind, DefKind: DefKindValueDef, Position: pos}
}

// NewParam creates a symbol for a function parameter.  Parameters are always
// initialized.
func NewParam(name string, kind value.Kind, pos *logging.TextPosition) *Symbol {
	return &Symbol{Name: name, Kind: kind, DefKind: DefKindParamDef, Initialized: true, Position: pos}
}

// NewFunction creates a symbol for a function
func NewFunction(name string, returns value.Kind, params []value.Kind, pos *logging.TextPosition) *Symbol {
	return &Symbol{Name: name, Kind: returns, DefKind: DefKindFuncDef, Params: params, Initialized: true, Position: pos}
}

// IsFunc returns whether the symbol names a function
func (sym *Symbol) IsFunc() bool {
	return sym.DefKind == DefKindFuncDef
}
