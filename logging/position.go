package logging

import "io"

// TextPosition represents a positional range in the source code.  Lines and
// columns are 1-based and both ends are inclusive.
type TextPosition struct {
	StartLn, StartCol int
	EndLn, EndCol     int
}

// SpanOver returns a position spanning from the start of `start` to the end of
// `end`.
func SpanOver(start, end *TextPosition) *TextPosition {
	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}

// LogContext identifies the source text a compile message refers to.
type LogContext struct {
	// FilePath is the (display) path of the source file
	FilePath string

	// Source is the full source text.  It is used to display the erroneous
	// lines.
	Source string
}

// LogMessage is the interface implemented by everything the logger displays.
type LogMessage interface {
	display(w io.Writer)
	isError() bool
}

// CompileMessage is an error or warning about user code.
type CompileMessage struct {
	Message  string
	Position *TextPosition
	Context  *LogContext
	IsError  bool
}

func (cm *CompileMessage) isError() bool {
	return cm.IsError
}

// ConfigError is an error in the configuration of the toolchain or project.
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool {
	return true
}

// BuildWarning is a warning about the build process itself.
type BuildWarning struct {
	Kind    string
	Message string
}

func (bw *BuildWarning) isError() bool {
	return false
}
