package blueprint

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Blueprint is a description of a Just program that can be built without
// writing Go code.  It is usually decoded from a TOML file.
type Blueprint struct {
	Name      string      `toml:"name"`
	Globals   []*Global   `toml:"globals"`
	Assigns   []*Assign   `toml:"assigns"`
	Functions []*Function `toml:"functions"`

	// Raw is a list of text fragments inserted verbatim at the end of the
	// program.
	Raw []string `toml:"raw"`
}

// Global is a top level variable declaration.
type Global struct {
	Name  string `toml:"name"`
	Kind  string `toml:"kind"`
	Value string `toml:"value"`
}

// Assign is a top level assignment to a global.
type Assign struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Function is a function declaration.
type Function struct {
	Name    string   `toml:"name"`
	Returns string   `toml:"returns"`
	Params  []*Param `toml:"params"`
	Body    []*Stmt  `toml:"body"`
}

// Param is a function parameter.
type Param struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

// Stmt is a statement of a function body.  Which fields are used depends on
// the op:
//
//   declare: name, kind and an optional value
//   assign:  name and value
//   if:      cond, then and an optional else
//   while:   cond and body
//   return:  an optional value or var
//   raw:     text
type Stmt struct {
	Op    string  `toml:"op"`
	Name  string  `toml:"name"`
	Kind  string  `toml:"kind"`
	Value string  `toml:"value"`
	Var   string  `toml:"var"`
	Cond  string  `toml:"cond"`
	Text  string  `toml:"text"`
	Then  []*Stmt `toml:"then"`
	Else  []*Stmt `toml:"else"`
	Body  []*Stmt `toml:"body"`
}

// Statement ops
const (
	OpDeclare = "declare"
	OpAssign  = "assign"
	OpIf      = "if"
	OpWhile   = "while"
	OpReturn  = "return"
	OpRaw     = "raw"
)

// Load reads and decodes a blueprint file.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	bp, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bp, nil
}

// Decode decodes a blueprint from TOML.
func Decode(data []byte) (*Blueprint, error) {
	bp := &Blueprint{}
	if err := toml.Unmarshal(data, bp); err != nil {
		return nil, fmt.Errorf("invalid blueprint: %w", err)
	}

	return bp, nil
}
