// Package output provides styled terminal output for the Plume CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)

	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// Called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in green.
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Info prints a status message in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Header prints a bold section heading.
func Header(msg string) {
	fmt.Println(headerStyle.Render(msg))
}

// Step prints an indented sub-item in gray.
//
// Example:
//
//	output.Step("docs/tutorials/index.md")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
