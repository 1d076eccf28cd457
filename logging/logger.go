package logging

import (
	"io"
	"os"
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// toolchain as necessary.  Loggers are created explicitly and handed to the
// components that report through them.
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// warnings is a list of all warnings to be logged at the end of the run
	warnings []LogMessage

	// out is where all messages are written
	out io.Writer

	// interactive indicates whether out is the terminal: spinners are only
	// displayed when it is
	interactive bool

	// phase is the state of the currently running phase spinner
	phase *phaseState

	// m is the mutex used to synchonize the printing of messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, version and progress summary, closing message (DEFAULT)
)

// NewLogger creates a new logger writing to out.  A nil writer is the same as
// standard output.
func NewLogger(out io.Writer, loglevel int) *Logger {
	if out == nil {
		out = os.Stdout
	}

	return &Logger{
		LogLevel:    loglevel,
		out:         out,
		interactive: out == os.Stdout,
		m:           &sync.Mutex{},
	}
}

// Silent returns a logger that never displays anything.  It still counts
// errors.
func Silent() *Logger {
	return NewLogger(io.Discard, LogLevelSilent)
}

// LevelFromName converts a log level name into a log level
func LevelFromName(loglevelname string) int {
	switch loglevelname {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		return LogLevelVerbose
	}
}

// handleMsg prompts to logger to process a message -- this message could be
// coming in concurrently and so we need to make sure we are not printing multiple
// things at the same time so we there is a mutex in place for this function
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			l.endPhase(false)
			lm.display(l.out)
		}
	} else {
		l.warnings = append(l.warnings, lm)
	}
}
