package deps

import (
	"path/filepath"
	"sort"

	"just/logging"
	"just/syntax"
	"just/walk"
)

// JustPackage represents a group of Just files checked together: the files
// named on the command line or the source files of a module
type JustPackage struct {
	// Name is the short name of the package
	Name string

	// RootPath is the absolute path to the root directory of the package
	RootPath string

	// Files contains all the individual files in this package
	Files []*JustFile
}

// NewPackage creates a new Just package based on the given absolute, root path
// (does NOT perform file initialization)
func NewPackage(rootPath string) *JustPackage {
	return &JustPackage{
		Name:     filepath.Base(rootPath),
		RootPath: rootPath,
	}
}

// AddFile adds a file to the package keeping the files ordered by path so that
// concurrently loaded packages are deterministic
func (pkg *JustPackage) AddFile(f *JustFile) {
	f.Parent = pkg
	pkg.Files = append(pkg.Files, f)

	sort.Slice(pkg.Files, func(i, j int) bool {
		return pkg.Files[i].FilePath < pkg.Files[j].FilePath
	})
}

// JustFile represents a file of Just source code
type JustFile struct {
	// Parent is a reference to this file's parent package
	Parent *JustPackage

	// FilePath is the absolute path to the file
	FilePath string

	// LogContext is the log context for this file
	LogContext *logging.LogContext

	// AST is the syntax tree of the file.  It is nil until the file is parsed.
	AST *syntax.File

	// Diagnostics are the problems found by name resolution
	Diagnostics []*walk.Diagnostic
}

// NewFile creates a new file from its path and source text
func NewFile(fpath, src string) *JustFile {
	return &JustFile{
		FilePath:   fpath,
		LogContext: &logging.LogContext{FilePath: fpath, Source: src},
	}
}

// Source returns the source text of the file
func (jf *JustFile) Source() string {
	return jf.LogContext.Source
}
