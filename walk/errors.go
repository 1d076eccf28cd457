package walk

import (
	"fmt"

	"just/logging"
)

// Diagnostic is a problem found while walking a file
type Diagnostic struct {
	Message  string
	Position *logging.TextPosition

	// IsError is false for warnings
	IsError bool
}

func (d *Diagnostic) Error() string {
	if d.Position == nil {
		return d.Message
	}

	return fmt.Sprintf("%d:%d: %s", d.Position.StartLn, d.Position.StartCol, d.Message)
}

// HasErrors returns whether any of the diagnostics is an error
func HasErrors(diags []*Diagnostic) bool {
	for _, d := range diags {
		if d.IsError {
			return true
		}
	}

	return false
}

// logError logs a compile error in the current file
func (w *Walker) logError(pos *logging.TextPosition, msg string, args ...interface{}) {
	d := &Diagnostic{Message: fmt.Sprintf(msg, args...), Position: pos, IsError: true}
	w.diagnostics = append(w.diagnostics, d)

	if w.logger != nil {
		w.logger.LogCompileError(w.ctx, d.Message, pos)
	}
}

// logWarning logs a compile warning in the current file
func (w *Walker) logWarning(pos *logging.TextPosition, msg string, args ...interface{}) {
	d := &Diagnostic{Message: fmt.Sprintf(msg, args...), Position: pos}
	w.diagnostics = append(w.diagnostics, d)

	if w.logger != nil {
		w.logger.LogCompileWarning(w.ctx, d.Message, pos)
	}
}

// checkTable reports a failed symbol table operation.  This only happens if
// scopes are pushed and popped out of balance so it is fatal.
func (w *Walker) checkTable(err error) {
	if err == nil {
		return
	}

	d := &Diagnostic{Message: fmt.Sprintf("symbol table misuse in %s: %s", w.ctx.FilePath, err), IsError: true}
	w.diagnostics = append(w.diagnostics, d)

	if w.logger != nil {
		w.logger.LogFatal("%s", d.Message)
	}
}
