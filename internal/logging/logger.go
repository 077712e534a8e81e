// Package logging provides colored, leveled log output for the henvdall CLI.
//
// All output functions write a prefixed, color-coded line. Error goes to the
// error stream, everything else to the regular output stream. Debug output
// is suppressed unless verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// verbose controls whether Debug() produces output.
var verbose bool

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	sectionPrefix = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput redirects the output and error streams. A nil writer keeps the
// current one.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Info prints an informational message in blue.
func Info(msg string) {
	fmt.Fprintln(stdout, infoPrefix("[INFO]")+" "+msg)
}

// Success prints a success message in green.
func Success(msg string) {
	fmt.Fprintln(stdout, successPrefix("[SUCCESS]")+" "+msg)
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	fmt.Fprintln(stdout, warnPrefix("[WARN]")+" "+msg)
}

// Error prints an error message to the error stream in red.
func Error(msg string) {
	fmt.Fprintln(stderr, errorPrefix("[ERROR]")+" "+msg)
}

// Section prints a header in cyan, surrounded by separator lines.
func Section(msg string) {
	sep := sectionPrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(stdout, sep)
	fmt.Fprintln(stdout, sectionPrefix("[HENVDALL]")+" "+msg)
	fmt.Fprintln(stdout, sep)
}

// Debug prints a debug message in blue, only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(stdout, debugPrefix("[DEBUG]")+" "+msg)
}
