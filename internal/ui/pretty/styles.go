// Package pretty provides Lipgloss-based styled output for the CLI.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultTableWidth is used when the output is not a terminal.
const defaultTableWidth = 80

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Summary components
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Table components
	TableHeader   lipgloss.Style
	TableDisabled lipgloss.Style
	TableReserve  lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:         plain,
			Success:       plain,
			Error:         plain,
			Warning:       plain,
			TableHeader:   plain,
			TableDisabled: plain,
			TableReserve:  plain,
			Dim:           plain,
			Bold:          plain,
		}
	}
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		TableHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableReserve:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:          lipgloss.NewStyle().Bold(true),
	}
}

// ColorEnabled resolves the --color flag ("auto", "always", "never")
// against the output destination.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// Width returns the terminal width of w, or a default for non-terminals.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTableWidth
}
