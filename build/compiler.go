package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"just/ast"
	"just/deps"
	"just/logging"
	"just/mods"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of the Just toolchain for one command
type Compiler struct {
	// logger receives all errors, warnings and phase updates
	logger *logging.Logger

	// rootMod is the module the command runs in.  It is nil when the command
	// is not run inside a module.
	rootMod *mods.JustModule

	// buildProfile is the profile selected for rootMod (nil when rootMod is)
	buildProfile *mods.BuildProfile

	// Out is where output goes when no output path is given
	Out io.Writer
}

// NewCompiler creates a new compiler for a given root module and build
// profile.  Both may be nil.
func NewCompiler(logger *logging.Logger, rootMod *mods.JustModule, buildProfile *mods.BuildProfile) *Compiler {
	return &Compiler{
		logger:       logger,
		rootMod:      rootMod,
		buildProfile: buildProfile,
		Out:          os.Stdout,
	}
}

// Indent returns the indentation unit programs are rendered with
func (c *Compiler) Indent() string {
	if c.rootMod != nil && c.rootMod.Indent != "" {
		return c.rootMod.Indent
	}

	return ast.Indent
}

// Analyze loads, parses and resolves the names of the given files.  If no
// files are given, the source files of the root module are used.  It handles
// all errors appropriately and returns the analyzed package along with a flag
// indicating whether analysis was successful.
func (c *Compiler) Analyze(paths []string) (*deps.JustPackage, bool) {
	if len(paths) == 0 {
		if c.rootMod == nil {
			c.logger.LogConfigError("Package", "no source files given and not inside a module")
			return nil, false
		}

		modFiles, err := c.rootMod.SourceFiles()
		if err != nil {
			c.logger.LogConfigError("Package", fmt.Sprintf("error walking module %s: %s", c.rootMod.Name, err.Error()))
			return nil, false
		}

		paths = modFiles
	}

	root, err := os.Getwd()
	if c.rootMod != nil {
		root, err = c.rootMod.ModuleRoot, nil
	}

	if err != nil {
		c.logger.LogFatal("failed to determine the working directory: %s", err)
		return nil, false
	}

	pkg, ok := c.initPackage(root, paths)
	if !ok {
		return nil, false
	}

	c.logger.BeginPhase("Resolving")
	c.resolvePackage(pkg)
	c.logger.EndPhase(c.logger.ShouldProceed())

	return pkg, c.logger.ShouldProceed()
}

// outputPath determines where the output of a command in the given format
// goes.  An explicit path always wins; otherwise the output path of the build
// profile is used if the profile produces that format.  An empty path means
// the output is written to `Out`.
func (c *Compiler) outputPath(explicit string, format int) string {
	if explicit != "" {
		return explicit
	}

	if c.buildProfile != nil && c.buildProfile.OutputFormat == format {
		return c.buildProfile.OutputPath
	}

	return ""
}

// writeOutput writes the output of a command to the given path or to `Out` if
// the path is empty
func (c *Compiler) writeOutput(path string, write func(w io.Writer) error) bool {
	if path == "" {
		if err := write(c.Out); err != nil {
			c.logger.LogStdError("Output", err)
			return false
		}

		return true
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		c.logger.LogConfigError("Output", fmt.Sprintf("unable to create output directory: %s", err.Error()))
		return false
	}

	f, err := os.Create(path)
	if err != nil {
		c.logger.LogConfigError("Output", fmt.Sprintf("unable to create output file: %s", err.Error()))
		return false
	}
	defer f.Close()

	if err := write(f); err != nil {
		c.logger.LogStdError("Output", err)
		return false
	}

	c.logger.LogInfo("Output", "wrote "+path)
	return true
}
