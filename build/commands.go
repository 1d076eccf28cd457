package build

import (
	"fmt"
	"io"

	"just/blueprint"
	"just/dsl"
	"just/generate"
	"just/mods"
	"just/syntax"
)

// Check analyzes the given files and reports all problems found.  If dumpTree
// is set, the parse tree of every file that parsed is written to `Out`.
func (c *Compiler) Check(paths []string, dumpTree bool) bool {
	pkg, ok := c.Analyze(paths)
	if pkg == nil {
		return false
	}

	if dumpTree {
		for _, file := range pkg.Files {
			fmt.Fprintln(c.Out, syntax.Dump(file.AST))
		}
	}

	return ok
}

// Emit analyzes a file and lowers it to LLVM IR.  The IR is written to
// outPath or the build profile's output if it is not given.
func (c *Compiler) Emit(path, outPath string) bool {
	pkg, ok := c.Analyze([]string{path})
	if !ok {
		return false
	}

	file := pkg.Files[0]

	c.logger.BeginPhase("Generating")
	mod, err := generate.Lower(file.AST)
	if err != nil {
		if le, ok := err.(*generate.LowerError); ok && le.Position != nil {
			c.logger.LogCompileError(file.LogContext, le.Message, le.Position)
		} else {
			c.logger.LogStdError("Generate", err)
		}

		return false
	}
	c.logger.EndPhase(true)

	return c.writeOutput(c.outputPath(outPath, mods.FormatLLVM), func(w io.Writer) error {
		return generate.Emit(w, mod)
	})
}

// Render builds the program described by a blueprint file, checks that the
// rendered text is valid Just and writes it to outPath or the build profile's
// output if it is not given.
func (c *Compiler) Render(path, outPath string) bool {
	bp, err := blueprint.Load(path)
	if err != nil {
		c.logger.LogConfigError("Blueprint", err.Error())
		return false
	}

	c.logger.BeginPhase("Rendering")
	src, err := bp.Render(dsl.NewSessionWith(c.Indent(), c.logger))
	if err != nil {
		// the session has already logged the error
		return false
	}

	if err := syntax.Validate(src); err != nil {
		c.logger.LogStdError("Validate", err)
		return false
	}
	c.logger.EndPhase(true)

	return c.writeOutput(c.outputPath(outPath, mods.FormatJust), func(w io.Writer) error {
		_, err := io.WriteString(w, src+"\n")
		return err
	})
}
