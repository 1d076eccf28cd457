package cmd

import (
	"os"

	"just/build"
	"just/common"
	"just/logging"
	"just/mods"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `just` application and returns its exit code
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("just", "just is a tool for authoring, checking and lowering Just programs", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "check source files and output errors", true)
	checkCmd.AddPrimaryArg("file-path", "the file to check (defaults to every file of the current module)", false)
	checkCmd.AddFlag("tree", "t", "print the parse tree of every checked file")
	checkCmd.AddStringArg("profile", "p", "the name of the module profile to use", false)

	emitCmd := cli.AddSubcommand("emit", "lower a source file to LLVM IR", true)
	emitCmd.AddPrimaryArg("file-path", "the file to lower", true)
	emitCmd.AddStringArg("output", "o", "the output path", false)
	emitCmd.AddStringArg("profile", "p", "the name of the module profile to use", false)

	renderCmd := cli.AddSubcommand("render", "build and render a program blueprint", true)
	renderCmd.AddPrimaryArg("blueprint-path", "the blueprint to render", true)
	renderCmd.AddStringArg("output", "o", "the output path", false)
	renderCmd.AddStringArg("profile", "p", "the name of the module profile to use", false)

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-name", "the name of the module", true)

	cli.AddSubcommand("version", "print the Just version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage(os.Stdout, "CLI Usage Error", err)
		return 2
	}

	loglevel := logging.LevelFromName(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check", "emit", "render":
		if execBuildCommand(subcmdName, subResult, logging.NewLogger(os.Stdout, loglevel)) {
			return 0
		}
	case "mod":
		if execModCommand(subResult) {
			return 0
		}
	case "version":
		logging.PrintInfoMessage(os.Stdout, "Just Version", common.JustVersion)
		return 0
	}

	return 1
}

// execBuildCommand executes one of the subcommands that run the toolchain and
// handles all errors.  It returns whether the command succeeded.
func execBuildCommand(name string, result *olive.ArgParseResult, logger *logging.Logger) bool {
	logger.LogHeader(name)

	// the module enclosing the working directory provides the defaults
	mod, prof, ok := loadEnclosingModule(stringArg(result, "profile"), logger)
	if !ok {
		logger.Finish()
		return false
	}

	c := build.NewCompiler(logger, mod, prof)

	primaryArg, hasPrimary := result.PrimaryArg()

	var succeeded bool
	switch name {
	case "check":
		var paths []string
		if hasPrimary {
			paths = append(paths, primaryArg)
		}

		succeeded = c.Check(paths, result.HasFlag("tree"))
	case "emit":
		succeeded = c.Emit(primaryArg, stringArg(result, "output"))
	case "render":
		succeeded = c.Render(primaryArg, stringArg(result, "output"))
	}

	logger.Finish()
	return succeeded
}

// execModCommand executes the `mod` subcommand and its subcommands.  It handles
// all errors related to this command
func execModCommand(result *olive.ArgParseResult) bool {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage(os.Stdout, "Path Error", err)
		return false
	}

	switch subcmdName {
	case "init":
		modNameValue, _ := subResult.PrimaryArg()
		if err := mods.InitModule(modNameValue, workDir); err != nil {
			logging.PrintErrorMessage(os.Stdout, "Module Init Error", err)
			return false
		}

		logging.PrintInfoMessage(os.Stdout, "Module", "initialized module `"+modNameValue+"`")
		return true
	}

	return false
}

// -----------------------------------------------------------------------------

// loadEnclosingModule loads the module enclosing the working directory if
// there is one.  The module and profile are nil if there is not.
func loadEnclosingModule(selectedProfile string, logger *logging.Logger) (*mods.JustModule, *mods.BuildProfile, bool) {
	workDir, err := os.Getwd()
	if err != nil {
		logger.LogConfigError("Path", err.Error())
		return nil, nil, false
	}

	modRoot, found := mods.FindModule(workDir)
	if !found {
		if selectedProfile != "" {
			logger.LogConfigError("Module", "a profile can only be selected inside a module")
			return nil, nil, false
		}

		return nil, nil, true
	}

	mod, prof, err := mods.LoadModule(modRoot, selectedProfile, logger)
	if err != nil {
		logger.LogConfigError("Module", "error loading module: "+err.Error())
		return nil, nil, false
	}

	logger.LogInfo("Module", "using module `"+mod.Name+"` with profile `"+prof.Name+"`")
	return mod, prof, true
}

// stringArg returns the value of an optional string argument or the empty
// string if it was not given.
func stringArg(result *olive.ArgParseResult, name string) string {
	if val, ok := result.Arguments[name]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}

	return ""
}
