package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// OneLine collapses every run of whitespace, line breaks included, into a
// single space.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most n terminal cells, ending in "..." when cut.
// Wide runes count as two cells.
func Truncate(s string, n int) string {
	if ansi.StringWidth(s) <= n {
		return s
	}
	if n <= len(ellipsis) {
		return ansi.Truncate(s, n, "")
	}
	return ansi.Truncate(s, n, ellipsis)
}
