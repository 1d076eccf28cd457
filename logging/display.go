package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"just/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error
func PrintErrorMessage(w io.Writer, tag string, err error) {
	fmt.Fprint(w, ErrorStyleBG.Sprint(tag))
	fmt.Fprintln(w, ErrorColorFG.Sprint(" "+err.Error()))
}

// PrintWarningMessage prints a warning message
func PrintWarningMessage(w io.Writer, tag, msg string) {
	fmt.Fprint(w, WarnStyleBG.Sprint(tag))
	fmt.Fprintln(w, WarnColorFG.Sprint(" "+msg))
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(w io.Writer, tag, msg string) {
	fmt.Fprint(w, InfoStyleBG.Sprint(tag))
	fmt.Fprintln(w, InfoColorFG.Sprint(" "+msg))
}

// -----------------------------------------------------------------------------
// This section contains all the display functions for the different kinds of
// messages that can be logged.

func (ce *ConfigError) display(w io.Writer) {
	PrintErrorMessage(w, ce.Kind+" Error", fmt.Errorf("%s", ce.Message))
}

func (bw *BuildWarning) display(w io.Writer) {
	PrintWarningMessage(w, bw.Kind+" Warning", bw.Message)
}

func (cm *CompileMessage) display(w io.Writer) {
	cm.displayBanner(w)
	fmt.Fprintln(w, cm.Message)

	if cm.Position != nil && cm.Context != nil && cm.Context.Source != "" {
		cm.displayCodeSelection(w)
	}
}

// displayBanner displays the banner on top of all compilation messages
func (cm *CompileMessage) displayBanner(w io.Writer) {
	fmt.Fprint(w, "\n\n-- ")
	kindLen := 0
	if cm.isError() {
		fmt.Fprint(w, ErrorStyleBG.Sprint("Error"))
		kindLen += 5
	} else {
		fmt.Fprint(w, WarnStyleBG.Sprint("Warning"))
		kindLen += 7
	}

	fmt.Fprint(w, " ")

	fileName := "<input>"
	if cm.Context != nil && cm.Context.FilePath != "" {
		fileName = filepath.Base(cm.Context.FilePath)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Fprint(w, strings.Repeat("-", dashCount)+" ")
	fmt.Fprintln(w, InfoColorFG.Sprint(fileName))
}

// displayCodeSelection displays the erroneous code (with line numbers) and
// highlights the appropriate sections
func (cm *CompileMessage) displayCodeSelection(w io.Writer) {
	pos := cm.Position
	srcLines := strings.Split(cm.Context.Source, "\n")
	if pos.StartLn < 1 || pos.StartLn > len(srcLines) {
		return
	}

	endLn := pos.EndLn
	if endLn < pos.StartLn {
		endLn = pos.StartLn
	} else if endLn > len(srcLines) {
		endLn = len(srcLines)
	}

	fmt.Fprintln(w)

	// tabs are expanded so that the carets line up
	lines := make([]string, endLn-pos.StartLn+1)
	for i := range lines {
		lines[i] = strings.ReplaceAll(
			strings.TrimRight(srcLines[pos.StartLn-1+i], "\r"),
			"\t",
			"    ",
		)
	}

	// columns are computed in the raw line so we need to account for the tab
	// expansion when placing the carets
	startCol := expandedColumn(srcLines[pos.StartLn-1], pos.StartCol)
	endCol := expandedColumn(srcLines[endLn-1], pos.EndCol)

	// calculate whitespace to trim
	minWhitespace := -1
	for _, line := range lines {
		leadingWhitespace := len(line) - len(strings.TrimLeft(line, " "))

		if minWhitespace == -1 || minWhitespace > leadingWhitespace {
			minWhitespace = leadingWhitespace
		}
	}

	// calculate the amount to pad line numbers by and use it to build a padding
	// format string (so we can use it to print out line numbers neatly)
	maxLineNumberWidth := len(strconv.Itoa(endLn)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(maxLineNumberWidth) + "v"

	for i, line := range lines {
		fmt.Fprint(w, InfoColorFG.Sprint(fmt.Sprintf(lineNumberFmtStr, i+pos.StartLn)))
		fmt.Fprint(w, "|  ")
		fmt.Fprintln(w, line[minWhitespace:])

		fmt.Fprint(w, strings.Repeat(" ", maxLineNumberWidth), "|  ")

		first, last := 0, len(line)-minWhitespace
		if i == 0 {
			first = startCol - 1 - minWhitespace
		}

		if i == len(lines)-1 {
			last = endCol - minWhitespace
		}

		if first < 0 {
			first = 0
		}

		if last <= first {
			last = first + 1
		}

		fmt.Fprint(w, strings.Repeat(" ", first))
		fmt.Fprintln(w, ErrorColorFG.Sprint(strings.Repeat("^", last-first)))
	}

	fmt.Fprintln(w)
}

// expandedColumn converts a 1-based column in a raw line into the equivalent
// column once tabs have been expanded to four spaces.
func expandedColumn(line string, col int) int {
	expanded := 0
	for i, c := range line {
		if i >= col-1 {
			break
		}

		if c == '\t' {
			expanded += 4
		} else {
			expanded++
		}
	}

	return expanded + 1
}

const fatalErrorPostlude = `
This is likely a bug in the toolchain.
Please open an issue with the input that caused it.`

func displayFatalError(w io.Writer, msg string) {
	fmt.Fprint(w, "\n\n")
	fmt.Fprint(w, ErrorStyleBG.Sprint("Fatal Error "))
	fmt.Fprintln(w, ErrorColorFG.Sprint(msg))
	fmt.Fprintln(w, InfoColorFG.Sprint(fatalErrorPostlude))
}

// -----------------------------------------------------------------------------

// displayHeader displays the toolchain information before running a command
func displayHeader(w io.Writer, command string) {
	fmt.Fprint(w, "just ")
	fmt.Fprint(w, InfoColorFG.Sprint("v"+common.JustVersion))
	fmt.Fprint(w, " -- ")
	fmt.Fprintln(w, InfoColorFG.Sprint(command))
}

// phaseState stores the current phase and its spinner (if any)
type phaseState struct {
	name      string
	spinner   *pterm.SpinnerPrinter
	startTime time.Time
}

const maxPhaseLength = len("Generating")

func padPhase(phase string) string {
	if len(phase) >= maxPhaseLength {
		return phase + "  "
	}

	return phase + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
}

// beginPhase displays the beginning of a phase.  The spinner is only used when
// writing to the terminal; otherwise, the phase is reported when it ends.
func (l *Logger) beginPhase(phase string) {
	l.endPhase(true)

	l.phase = &phaseState{name: phase, startTime: time.Now()}
	if !l.interactive {
		return
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	spinner.Start(padPhase(phase) + "...")
	l.phase.spinner = spinner
}

// endPhase displays the end of the current phase (if there is one)
func (l *Logger) endPhase(success bool) {
	if l.phase == nil {
		return
	}

	elapsed := fmt.Sprintf("(%.3fs)", time.Since(l.phase.startTime).Seconds())
	if l.phase.spinner != nil {
		if success {
			l.phase.spinner.Success(padPhase(l.phase.name), elapsed)
		} else {
			l.phase.spinner.Fail(padPhase(l.phase.name))
		}
	} else if l.LogLevel == LogLevelVerbose {
		if success {
			fmt.Fprintln(l.out, SuccessStyleBG.Sprint("Done"), padPhase(l.phase.name), elapsed)
		} else {
			fmt.Fprintln(l.out, ErrorStyleBG.Sprint("Fail"), padPhase(l.phase.name))
		}
	}

	l.phase = nil
}

// displayFinished displays the closing message
func displayFinished(w io.Writer, success bool, errorCount, warningCount int) {
	fmt.Fprint(w, "\n")

	if success {
		fmt.Fprint(w, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(w, ErrorColorFG.Sprint("Oh no! "))
	}

	fmt.Fprint(w, "(")

	switch errorCount {
	case 0:
		fmt.Fprint(w, SuccessColorFG.Sprint(0))
		fmt.Fprint(w, " errors, ")
	case 1:
		fmt.Fprint(w, ErrorColorFG.Sprint(1))
		fmt.Fprint(w, " error, ")
	default:
		fmt.Fprint(w, ErrorColorFG.Sprint(errorCount))
		fmt.Fprint(w, " errors, ")
	}

	switch warningCount {
	case 0:
		fmt.Fprint(w, SuccessColorFG.Sprint(0))
		fmt.Fprintln(w, " warnings)")
	case 1:
		fmt.Fprint(w, WarnColorFG.Sprint(1))
		fmt.Fprintln(w, " warning)")
	default:
		fmt.Fprint(w, WarnColorFG.Sprint(warningCount))
		fmt.Fprintln(w, " warnings)")
	}
}
