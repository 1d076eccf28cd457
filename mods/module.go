package mods

// JustModule represents a module: a directory of Just source files and the
// configuration in its module file.
type JustModule struct {
	// Name is the name of the module
	Name string

	// ModuleRoot is the path to the root directory of the current module
	ModuleRoot string

	// Version is the Just version the module was written for
	Version string

	// Indent is the indentation unit used when rendering programs for this
	// module: either a tab or some number of spaces
	Indent string

	// SourceDirs is the list of directories containing the module's source
	// files.  These are absolute paths.
	SourceDirs []string
}

// BuildProfile represents the profile used to produce output for a module --
// it is returned from `LoadModule`.
type BuildProfile struct {
	// Name is the name of the profile
	Name string

	// OutputPath is the path to the output file.  It is an absolute path.
	OutputPath string

	// OutputFormat is the type of output that should be produced.  This should
	// be one of the enumerated formats (prefixed `Format`).
	OutputFormat int
}

// Available Output Formats
const (
	FormatJust = iota // Rendered Just source
	FormatLLVM        // LLVM IR
)

// formatNames maps TOML format name strings to enumerated format values
var formatNames = map[string]int{
	"just": FormatJust,
	"llvm": FormatLLVM,
}

// FormatName returns the TOML name of an output format.
func FormatName(format int) string {
	for name, f := range formatNames {
		if f == format {
			return name
		}
	}

	return ""
}
