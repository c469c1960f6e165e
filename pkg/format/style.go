package format

import (
	"strings"

	"github.com/pkg/errors"
)

// Style controls the layout of formatted queries. Styles are plain values;
// pass them explicitly to every call rather than sharing a mutable one.
type Style struct {
	// Indent is the unit used for every nesting level.
	Indent string
	// Newline separates items inside a block (columns, parenthesized content).
	Newline string
	// ClauseSeparator separates clauses, boolean connectives and CASE branches.
	ClauseSeparator string
	// DropComments removes every comment from the output.
	DropComments bool
}

var (
	// Pretty lays queries out one clause per line, indented with tabs.
	Pretty = Style{Indent: "\t", Newline: "\n", ClauseSeparator: "\n"}

	// Minify collapses a query onto a single line and drops its comments.
	Minify = Style{ClauseSeparator: " ", DropComments: true}

	// Defaults is the style used when none is configured.
	Defaults = Pretty
)

// StyleByName returns the preset called name ("pretty" or "minify"), ignoring
// case.
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pretty":
		return Pretty, nil
	case "minify":
		return Minify, nil
	default:
		return Style{}, errors.Errorf("unknown style: %s", name)
	}
}
