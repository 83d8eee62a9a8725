// Package testutil holds helpers shared by view and output tests.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered views can be compared as
// plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// PlainLines strips escape sequences and trailing padding from every line.
func PlainLines(s string) []string {
	lines := strings.Split(StripANSI(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// Width reports the display width of s in cells, ignoring escapes.
func Width(s string) int {
	return ansi.StringWidth(s)
}
