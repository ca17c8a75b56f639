package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeForTerminal removes escape sequences and control characters
// (except newlines and tabs) from backend-supplied text.
func SanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// ClampLines cuts every line of s to width cells, adding "…" when cut.
func ClampLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) > width {
			lines[i] = ansi.Truncate(ln, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}
