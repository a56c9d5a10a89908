// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// JoinEnds places left and right on one line of the given width, truncating
// left when both do not fit.
func JoinEnds(left, right string, width int) string {
	rightWidth := ansi.StringWidth(right)
	if width <= rightWidth {
		return right
	}
	left = Truncate(left, width-rightWidth-1)
	gap := width - ansi.StringWidth(left) - rightWidth
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
