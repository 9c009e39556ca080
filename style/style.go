// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import (
	"github.com/boxkit/boxkit/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Standard text transformation helpers.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Op renders an operation name in inline output.
var Op = func(s string) string {
	return New().Bold(true).Foreground(color.Purple).Render(s)
}

// Result renders the value produced by an operation.
var Result = Fg(color.Yellow)

// Failure renders an operation error.
var Failure = Fg(color.Red)
