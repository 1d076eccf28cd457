package mods

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"just/common"
	"just/logging"

	"github.com/pelletier/go-toml"
)

// tomlModuleFile represents the module file as it is encoded in TOML
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a Just module as it is encoded in TOML
type tomlModule struct {
	Name          string         `toml:"name"`
	Version       string         `toml:"just-version"`
	Indent        string         `toml:"indent"`
	SourceDirs    []string       `toml:"source-dirs,omitempty"`
	BuildProfiles []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a profile as it encoded in TOML
type tomlProfile struct {
	Name        string `toml:"name"`
	OutputPath  string `toml:"output"`
	Format      string `toml:"format"`
	Primary     bool   `toml:"primary"` // of several candidate profiles, choose this profile
	DefaultProf bool   `toml:"default"` // in absence of a selected profile, choose this profile
}

// LoadModule loads and validates a module as well as determining the correct
// profile.  `path` is the path to the module directory.  `selectedProfile` can
// be empty if there is no profile selected.  Warnings about the module are
// reported to the logger if it is not nil.
func LoadModule(path, selectedProfile string, logger *logging.Logger) (*JustModule, *BuildProfile, error) {
	// open file
	f, err := os.Open(filepath.Join(path, common.ModuleFileName))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	// unmarshal the contents
	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, nil, err
	}

	if tmf.Module == nil {
		return nil, nil, fmt.Errorf("missing module table in module file at %s", path)
	}

	// justMod is the final, extracted module that is returned
	justMod := &JustModule{
		// module root is the directory enclosing the module file
		ModuleRoot: path,
	}

	// ensure that the base module is valid
	if err := validateModule(justMod, tmf.Module, logger); err != nil {
		return nil, nil, err
	}

	// select and validate an appropriate build profile
	prof, err := selectProfile(justMod, tmf.Module, selectedProfile, logger)
	if err != nil {
		return nil, nil, err
	}

	return justMod, prof, nil
}

// validateModule checks that the top level module contents are valid and
// moves them over to the Just module
func validateModule(jmod *JustModule, mod *tomlModule, logger *logging.Logger) error {
	if mod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", jmod.ModuleRoot)
	}

	if !common.IsValidIdentifier(mod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if mod.Version != common.JustVersion && logger != nil {
		logger.LogBuildWarning(
			"module",
			fmt.Sprintf("version of module `%s` (v%s) does not match current just version (v%s)", mod.Name, mod.Version, common.JustVersion),
		)
	}

	indent, err := convertIndent(mod.Indent)
	if err != nil {
		return fmt.Errorf("%s in module %s", err, mod.Name)
	}

	jmod.Name = mod.Name
	jmod.Version = mod.Version
	jmod.Indent = indent

	// source files are searched for in the module root by default
	if len(mod.SourceDirs) == 0 {
		jmod.SourceDirs = []string{jmod.ModuleRoot}
	} else {
		for _, dir := range mod.SourceDirs {
			jmod.SourceDirs = append(jmod.SourceDirs, absPath(jmod.ModuleRoot, dir))
		}
	}

	return nil
}

// convertIndent converts the TOML indentation setting into an indentation
// unit: `tab` (the default) or a number of spaces
func convertIndent(indent string) (string, error) {
	if indent == "" || indent == "tab" {
		return "\t", nil
	}

	n, err := strconv.Atoi(indent)
	if err != nil || n < 1 || n > 16 {
		return "", fmt.Errorf("invalid indentation `%s`: must be `tab` or a number of spaces", indent)
	}

	return strings.Repeat(" ", n), nil
}

// selectProfile attempts to select a build profile based on a selected
// profile if one exists and validates this profile
func selectProfile(jmod *JustModule, mod *tomlModule, selectedProfile string, logger *logging.Logger) (*BuildProfile, error) {
	if len(mod.BuildProfiles) == 0 {
		return nil, fmt.Errorf("module %s must provide at least one build profile", mod.Name)
	}

	if selectedProfile != "" {
		for _, prof := range mod.BuildProfiles {
			if prof.Name == selectedProfile {
				convProf, err := convertProfile(jmod, prof)
				if err != nil {
					return nil, fmt.Errorf("%s in module %s", err, mod.Name)
				}

				// found profile; exit
				return convProf, nil
			}
		}

		return nil, fmt.Errorf("module `%s` has no profile `%s`", mod.Name, selectedProfile)
	}

	var defaults []*tomlProfile
	primaryProfile := -1
	for _, prof := range mod.BuildProfiles {
		if prof.DefaultProf {
			if prof.Primary {
				primaryProfile = len(defaults)
			}

			defaults = append(defaults, prof)
		}
	}

	switch len(defaults) {
	case 0:
		return nil, fmt.Errorf("module `%s` does not specify a default profile; `--profile` argument is required", mod.Name)
	case 1:
		return convertProfile(jmod, defaults[0])
	default:
		if primaryProfile == -1 {
			if logger != nil {
				logger.LogBuildWarning(
					"module",
					fmt.Sprintf("multiple default profiles for module `%s` detected; building with profile `%s`", mod.Name, defaults[0].Name),
				)
			}

			primaryProfile = 0
		}

		return convertProfile(jmod, defaults[primaryProfile])
	}
}

// convertProfile converts a TOML build profile into a `*BuildProfile`
func convertProfile(jmod *JustModule, tprof *tomlProfile) (*BuildProfile, error) {
	if tprof.Name == "" {
		return nil, errors.New("profile must specify a name")
	}

	if tprof.OutputPath == "" {
		return nil, errors.New("profile must specify an output path")
	}

	if tprof.Format == "" {
		return nil, errors.New("profile must specify an output format")
	}

	newProfile := &BuildProfile{
		Name:       tprof.Name,
		OutputPath: absPath(jmod.ModuleRoot, tprof.OutputPath),
	}

	if formatVal, ok := formatNames[tprof.Format]; ok {
		newProfile.OutputFormat = formatVal
	} else {
		return nil, fmt.Errorf("%s is not a valid output format", tprof.Format)
	}

	return newProfile, nil
}

// absPath resolves a path relative to the module root
func absPath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(root, path)
}
