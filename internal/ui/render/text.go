// Package render provides text helpers for fixed-width terminal rows.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Sanitize drops control characters and invalid UTF-8, and turns
// non-breaking spaces into plain ones. Tag metadata is not trusted to be
// printable.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, needsRewrite) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case needsRewrite(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsRewrite(r rune) bool {
	return r == '\u00a0' || unicode.IsControl(r)
}

// Fit sanitizes s and truncates it to maxWidth cells.
func Fit(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Row places left and right at the edges of a width-cell row, keeping at
// least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
