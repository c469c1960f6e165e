// Package format renders parsed queries back to canonically laid out text.
//
// The layout is driven by a Style value: Pretty puts every clause on its own
// line and indents nested blocks with tabs, Minify collapses the query onto a
// single line and drops its comments. Keywords are upper-cased, everything
// else (identifiers, strings, templates) is emitted exactly as written, and
// comments stay attached to the token they followed.
//
// Key features:
//   - One column per line under SELECT, one clause per line after it
//   - Numeric parenthesized expressions stay on one line, others expand
//   - Bracket lists are always flattened onto a single line
//   - Nested CASE blocks and subqueries indent one level per depth
//   - UNION/EXCEPT chains stay at the level of the statements they join
//
// Usage:
//
//	// Format a single query
//	out, err := format.String("select a, b from t where a > 1", format.Pretty)
//
//	// Write to any io.Writer
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Minify, "select a -- note\nfrom t")
//
//	// Render an already parsed query
//	query, _ := parser.ParseString("select 1")
//	out := format.New(format.Defaults).Query(query)
//
// Formatting is a pure function of the input text and style: it is safe to
// format many inputs concurrently.
package format
