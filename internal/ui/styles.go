package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rail44/drills/internal/config"
)

// Styles decorates exercise output. The zero value leaves text untouched.
type Styles struct {
	enabled bool
	title   lipgloss.Style
	header  lipgloss.Style
}

// NewStyles returns styles that are active only when enabled is true
func NewStyles(enabled bool) *Styles {
	return &Styles{
		enabled: enabled,
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		header:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("10")),
	}
}

// ForStdout enables styling when color is "auto" and stdout is a terminal.
func ForStdout(color string) *Styles {
	return NewStyles(color == config.ColorAuto && IsTerminal(os.Stdout.Fd()))
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Enabled returns whether styling is applied
func (s *Styles) Enabled() bool {
	return s != nil && s.enabled
}

// Title styles a banner title
func (s *Styles) Title(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.title.Render(text)
}

// Header styles a verse header line
func (s *Styles) Header(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.header.Render(text)
}
