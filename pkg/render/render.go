/* pkg/render/render.go */

// Package render maps strength and risk levels to the terminal palette.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spartansec/spartanpass/pkg/config"
)

var (
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(config.ColorWeak)).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.ColorMedium)).Bold(true)
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.ColorStrong)).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.SpartanAccent)).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(config.SpartanMuted))
)

// Level renders a strength level in its palette color.
func Level(level string) string {
	switch level {
	case "strong":
		return strongStyle.Render(level)
	case "medium":
		return mediumStyle.Render(level)
	default:
		return weakStyle.Render(level)
	}
}

// RiskLevel renders a pattern risk level. Low risk is good news, so the
// scale runs green to red.
func RiskLevel(level string) string {
	switch level {
	case "none":
		return strongStyle.Render(level)
	case "low":
		return mediumStyle.Render(level)
	case "medium":
		return mediumStyle.Render(level)
	default:
		return weakStyle.Render(level)
	}
}

// Bar renders a strength meter of the given width for a 0-100 percentage.
func Bar(percentage float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}

	var style lipgloss.Style
	switch {
	case percentage <= 40:
		style = weakStyle
	case percentage <= 80:
		style = mediumStyle
	default:
		style = strongStyle
	}

	return style.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

// Accent renders headings in the gold accent color.
func Accent(s string) string {
	return accentStyle.Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
