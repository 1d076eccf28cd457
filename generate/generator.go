package generate

import (
	"fmt"
	"io"

	"just/syntax"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	llvalue "github.com/llir/llvm/ir/value"
)

// InitFuncName is the name of the generated function that runs the top level
// assignments and non-constant global initializers of a program in order.
const InitFuncName = "__just_init"

// llvmVar is a variable in the generated module: a pointer to its storage and
// the type of the value stored there.
type llvmVar struct {
	ptr      llvalue.Value
	elemType types.Type
}

// Generator is responsible for converting a parsed Just file into an LLVM
// module.  Names are assumed to have already been resolved: the generator only
// checks the kinds of the values it combines.  Generators are created once per
// file.
type Generator struct {
	// file is the source file being converted.
	file *syntax.File

	// mod is the LLVM module being generated.
	mod *ir.Module

	// globalScope is the scope containing all global variables.
	globalScope map[string]llvmVar

	// funcs contains all the functions of the program.
	funcs map[string]*ir.Func

	// localScopes is the stack of local scopes used during generation.
	localScopes []map[string]llvmVar

	// initFunc is the initialization function of the program.
	initFunc *ir.Func

	// initEntry is the entry block of the initialization function and
	// initBlock is the block top level code is currently appended to.
	initEntry, initBlock *ir.Block

	// enclosingFunc is function enclosing the block being generated.
	enclosingFunc *ir.Func

	// entry is the entry block of the enclosing function: all local storage
	// is allocated there.
	entry *ir.Block

	// block stores the current block begin generated.
	block *ir.Block

	// localCounter is used to give every local a unique name.
	localCounter int
}

// NewGenerator creates a new generator for the given file.
func NewGenerator(f *syntax.File) *Generator {
	mod := ir.NewModule()
	mod.SourceFilename = f.Path
	if mod.SourceFilename == "" {
		mod.SourceFilename = f.Name
	}

	return &Generator{
		file:        f,
		mod:         mod,
		globalScope: make(map[string]llvmVar),
		funcs:       make(map[string]*ir.Func),
	}
}

// Generate runs the generation algorithm.  The returned error is always a
// *LowerError.
func (g *Generator) Generate() (mod *ir.Module, err error) {
	defer catchErrors(&err)

	g.initFunc = g.mod.NewFunc(InitFuncName, types.Void)
	g.initEntry = g.initFunc.NewBlock("entry")
	g.initBlock = g.initEntry

	// functions can be called before they are defined so their signatures
	// are generated first
	for _, decl := range g.file.Decls {
		if fd, ok := decl.(*syntax.FuncDecl); ok {
			g.genFuncSignature(fd)
		}
	}

	for _, decl := range g.file.Decls {
		switch v := decl.(type) {
		case *syntax.FuncDecl:
			g.genFuncBody(v)
		case *syntax.VarDecl:
			g.genGlobalVar(v)
		case *syntax.Assign:
			g.inInit(func() { g.genAssign(v) })
		}
	}

	g.initBlock.NewRet(nil)
	return g.mod, nil
}

// Lower converts a parsed file into an LLVM module.
func Lower(f *syntax.File) (*ir.Module, error) {
	return NewGenerator(f).Generate()
}

// Emit writes the textual LLVM IR of a module.
func Emit(w io.Writer, mod *ir.Module) error {
	if _, err := mod.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write LLVM IR: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

// pushScope pushes a new local scope onto the local scope stack.
func (g *Generator) pushScope() {
	g.localScopes = append(g.localScopes, make(map[string]llvmVar))
}

// popScope pops a local scope off of the local scope stack.
func (g *Generator) popScope() {
	g.localScopes = g.localScopes[:len(g.localScopes)-1]
}

// defineLocal allocates storage for a local variable in the entry block of
// the enclosing function and defines it in the current scope.
func (g *Generator) defineLocal(name string, typ types.Type) llvmVar {
	alloca := g.entry.NewAlloca(typ)
	alloca.SetName(fmt.Sprintf("%s.%d", name, g.localCounter))
	g.localCounter++

	v := llvmVar{ptr: alloca, elemType: typ}
	g.localScopes[len(g.localScopes)-1][name] = v
	return v
}

// lookup looks up a variable.
func (g *Generator) lookup(name string) (llvmVar, bool) {
	// iterate through scopes in reverse order to implement shadowing.
	for i := len(g.localScopes) - 1; i >= 0; i-- {
		if v, ok := g.localScopes[i][name]; ok {
			return v, true
		}
	}

	v, ok := g.globalScope[name]
	return v, ok
}

// inInit positions the generator at the end of the initialization function,
// runs gen and then stores the position reached.
func (g *Generator) inInit(gen func()) {
	g.enclosingFunc = g.initFunc
	g.entry = g.initEntry
	g.block = g.initBlock

	gen()

	g.initBlock = g.block
	g.enclosingFunc = nil
	g.entry = nil
	g.block = nil
}

// appendBlock adds a new basic block to the current function.  It does *not*
// set the current block to this new block.
func (g *Generator) appendBlock() *ir.Block {
	return g.enclosingFunc.NewBlock(fmt.Sprintf("bb%d", len(g.enclosingFunc.Blocks)))
}
