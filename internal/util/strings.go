package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ellipsize shortens a string to at most max terminal cells, appending an
// ellipsis when anything was cut. Field values from record payloads can be
// arbitrarily long and would otherwise break table layouts; width is
// measured in cells so wide characters cannot overflow a column.
func Ellipsize(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return ansi.Truncate(s, max, "…")
}
