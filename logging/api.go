package logging

import "fmt"

// ShouldProceed indicates whether or not the logger has encountered any errors.
// This is useful for sections of the toolchain where multiple items are
// processed concurrently and having an error accumulator is practical
func (l *Logger) ShouldProceed() bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.errorCount == 0
}

// ErrorCount returns the number of errors logged so far.
func (l *Logger) ErrorCount() int {
	l.m.Lock()
	defer l.m.Unlock()

	return l.errorCount
}

// WarningCount returns the number of warnings logged so far.
func (l *Logger) WarningCount() int {
	l.m.Lock()
	defer l.m.Unlock()

	return len(l.warnings)
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileError logs a compilation error (user-induced, bad code)
func (l *Logger) LogCompileError(lctx *LogContext, message string, pos *TextPosition) {
	l.handleMsg(&CompileMessage{
		Message:  message,
		Position: pos,
		Context:  lctx,
		IsError:  true,
	})
}

// LogCompileWarning logs a compilation warning (user-induced, problematic code)
func (l *Logger) LogCompileWarning(lctx *LogContext, message string, pos *TextPosition) {
	l.handleMsg(&CompileMessage{
		Message:  message,
		Position: pos,
		Context:  lctx,
		IsError:  false,
	})
}

// LogConfigError logs an error related to project or toolchain configuration
func (l *Logger) LogConfigError(kind, message string) {
	l.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogStdError logs a standard Go error under the given tag.
func (l *Logger) LogStdError(tag string, err error) {
	l.handleMsg(&ConfigError{Kind: tag, Message: err.Error()})
}

// LogBuildWarning logs a warning in the build process
func (l *Logger) LogBuildWarning(kind, warning string) {
	l.handleMsg(&BuildWarning{Kind: kind, Message: warning})
}

// LogFatal logs an error that was not expected: ie. the toolchain did
// something it wasn't supposed to.  These are always displayed regardless of
// log level.
func (l *Logger) LogFatal(format string, args ...interface{}) {
	l.m.Lock()
	defer l.m.Unlock()

	l.errorCount++
	l.endPhase(false)
	displayFatalError(l.out, fmt.Sprintf(format, args...))
}

// LogInfo prints an informational message at the verbose log level.
func (l *Logger) LogInfo(tag, msg string) {
	if l.LogLevel < LogLevelVerbose {
		return
	}

	l.m.Lock()
	defer l.m.Unlock()

	PrintInfoMessage(l.out, tag, msg)
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" logging functions that will only run if the
// log level is to verbose.

// LogHeader displays the header printed before a command runs.
func (l *Logger) LogHeader(command string) {
	if l.LogLevel == LogLevelVerbose {
		l.m.Lock()
		defer l.m.Unlock()

		displayHeader(l.out, command)
	}
}

// BeginPhase displays the beginning of a phase (parsing, checking, ...).
func (l *Logger) BeginPhase(phase string) {
	if l.LogLevel == LogLevelVerbose {
		l.m.Lock()
		defer l.m.Unlock()

		l.beginPhase(phase)
	}
}

// EndPhase displays the end of the current phase.
func (l *Logger) EndPhase(success bool) {
	l.m.Lock()
	defer l.m.Unlock()

	l.endPhase(success)
}

// Finish displays all deferred warnings and the closing message.
func (l *Logger) Finish() {
	l.m.Lock()
	defer l.m.Unlock()

	if l.LogLevel >= LogLevelWarning {
		for _, warning := range l.warnings {
			warning.display(l.out)
		}
	}

	if l.LogLevel > LogLevelSilent {
		displayFinished(l.out, l.errorCount == 0, l.errorCount, len(l.warnings))
	}
}
