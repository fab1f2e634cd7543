// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree elements
	Node   lipgloss.Style
	Token  lipgloss.Style
	Trivia lipgloss.Style
	Range  lipgloss.Style
	Text   lipgloss.Style
	Error  lipgloss.Style

	// Anomaly components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Summary
	Success lipgloss.Style
	Failure lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Node:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Token:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Trivia: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Range:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Node:       plain,
		Token:      plain,
		Trivia:     plain,
		Range:      plain,
		Text:       plain,
		Error:      plain,
		FilePath:   plain,
		Location:   plain,
		Message:    plain,
		SourceLine: plain,
		Caret:      plain,
		Success:    plain,
		Failure:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the column count of writer when it is a terminal.
// It returns 0 for other writers so piped output is never clipped, and a
// default width when the terminal size cannot be read.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
