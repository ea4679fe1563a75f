// Package ui renders task-cli terminal output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	statusStyles = map[string]lipgloss.Style{
		"todo":        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"in-progress": lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		"done":        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
	idStyle = lipgloss.NewStyle().Bold(true)
)

// ColorEnabled reports whether stdout should receive ANSI styling.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Palette styles table cells, or passes them through when disabled.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that styles output only when enabled is true.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Status styles a status name. Unknown statuses are returned unchanged.
func (p Palette) Status(status string) string {
	if !p.enabled {
		return status
	}
	style, ok := statusStyles[status]
	if !ok {
		return status
	}
	return style.Render(status)
}

// ID styles a task id.
func (p Palette) ID(id string) string {
	if !p.enabled || id == "" {
		return id
	}
	return idStyle.Render(id)
}
