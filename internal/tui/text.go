package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// sanitize drops control characters and invalid UTF-8 from catalog text,
// which would otherwise break the terminal layout.
func sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// truncate shortens s to maxWidth cells, wide characters included.
func truncate(s string, maxWidth int) string {
	return runewidth.Truncate(sanitize(s), maxWidth, "...")
}

// row places right at the end of a width-wide line, left at its start.
// Both may contain styling.
func row(left, right string, width int) string {
	gap := max(width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
