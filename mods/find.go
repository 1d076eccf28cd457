package mods

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"just/common"

	"github.com/pelletier/go-toml"
)

// FindModule searches the given directory and its parents for a module and
// returns the path to the root of the first module it finds.
func FindModule(dir string) (string, bool) {
	abspath, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		if checkPath(abspath) {
			return abspath, true
		}

		parent := filepath.Dir(abspath)
		if parent == abspath {
			return "", false
		}

		abspath = parent
	}
}

// checkPath checks to see if a potential module path is valid -- accepts the
// path to the module root not the path to the module file
func checkPath(abspath string) bool {
	// convert the abs path into a path to the module file
	mfPath := filepath.Join(abspath, common.ModuleFileName)

	// check to see if we can open the module file
	finfo, err := os.Stat(mfPath)
	if err != nil || finfo.IsDir() {
		return false
	}

	// only the name is checked here: the full module is validated when it is
	// loaded
	tree, err := toml.LoadFile(mfPath)
	if err != nil {
		return false
	}

	if nameField, ok := tree.Get("module.name").(string); ok {
		return nameField != ""
	}

	return false
}

// SourceFiles returns the paths of all the Just source files in the source
// directories of a module in lexical order.
func (m *JustModule) SourceFiles() ([]string, error) {
	var files []string
	for _, dir := range m.SourceDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() && strings.HasSuffix(path, common.SrcFileExtension) {
				files = append(files, path)
			}

			return nil
		})

		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
