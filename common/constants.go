package common

const (
	SrcFileExtension = ".just"
	ModuleFileName   = "just-mod.toml"
	JustVersion      = "0.1.0"
)
