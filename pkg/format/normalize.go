package format

import (
	"regexp"
	"strings"
)

var (
	blankLines     = regexp.MustCompile(`\n\s*\n`)
	leadingSpaces  = regexp.MustCompile(`(?m)^(\t*) +`)
	indentedMarker = regexp.MustCompile(`(?m)^[ \t]*--`)
	leadingTabs    = regexp.MustCompile(`(?m)^\t+`)
)

// normalize tidies a rendered query. Blank lines and spaces ahead of a line's
// content are removed and comments that start a line move to column zero.
// Nesting tabs are then swapped for the configured indent unit.
func normalize(s, indent string) string {
	s = blankLines.ReplaceAllString(s, "\n")
	s = leadingSpaces.ReplaceAllString(s, "$1")
	s = indentedMarker.ReplaceAllString(s, "--")
	s = strings.TrimSpace(s)

	if indent != "" && indent != "\t" {
		s = leadingTabs.ReplaceAllStringFunc(s, func(tabs string) string {
			return strings.Repeat(indent, len(tabs))
		})
	}

	return s
}
