package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/parser"
)

type (
	// Formatter renders parsed queries with a fixed Style. A Formatter holds
	// no mutable state and may be shared between goroutines.
	Formatter struct {
		style Style
	}

	// printer renders a single query. kept counts the comments emitted so far
	// so that flattening never pulls code onto a comment line.
	printer struct {
		style Style
		tab   string
		kept  int
	}
)

// New creates a new Formatter with the specified style.
func New(style Style) *Formatter {
	return &Formatter{style: style}
}

// Style returns the style the formatter renders with.
func (f *Formatter) Style() Style {
	return f.style
}

// Query renders a parsed query.
func (f *Formatter) Query(q *parser.Query) string {
	if q == nil {
		return ""
	}

	return f.newPrinter().query(q)
}

// Script renders every query of a script. Pretty output separates queries
// with an empty line, single-line styles with the clause separator.
func (f *Formatter) Script(s *parser.Script) string {
	if s == nil {
		return ""
	}

	sep := f.style.ClauseSeparator
	if f.style.Newline != "" {
		sep = f.style.Newline + f.style.Newline
	}

	queries := make([]string, 0, len(s.Queries))
	for _, q := range s.Queries {
		queries = append(queries, f.Query(q))
	}

	return strings.Join(queries, sep)
}

func (f *Formatter) newPrinter() *printer {
	p := &printer{style: f.style}
	if f.style.Indent != "" {
		p.tab = "\t"
	}

	return p
}

// String formats a single query with the given style.
//
// Example:
//
//	out, err := format.String("select a, b from t where x = 1", format.Pretty)
//	// SELECT
//	//	a,
//	//	b
//	// FROM t
//	// WHERE x = 1
//
// The returned error wraps a *parser.LexError or *parser.ParseError; use
// errors.As to get at the failure offset. Formatting is all or nothing: no
// partial output is returned on failure.
func String(text string, style Style) (string, error) {
	query, err := parser.ParseString(text)
	if err != nil {
		return "", errors.Wrap(err, "failed to format query")
	}

	return New(style).Query(query), nil
}

// Format formats a single query and writes the result to w.
func Format(w io.Writer, style Style, text string) error {
	out, err := String(text, style)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return errors.Wrap(err, "failed to write formatted query")
}

// Script formats a sequence of semicolon separated queries. Input without
// any query (blank, or only comments) is returned trimmed. The name is used
// in error messages.
func Script(name, text string, style Style) (string, error) {
	script, err := parser.ParseScript(name, text)
	if err != nil {
		return "", errors.Wrap(err, "failed to format script")
	}

	if len(script.Queries) == 0 {
		return strings.TrimSpace(text), nil
	}

	return New(style).Script(script), nil
}

func (p *printer) query(q *parser.Query) string {
	var sb strings.Builder
	for _, c := range q.Leading {
		sb.WriteString(p.comment(c))
	}

	sb.WriteString(p.expr(q.Body))
	for _, semi := range q.Semicolons {
		sb.WriteString(p.token(semi))
	}

	return normalize(sb.String(), p.style.Indent)
}

// token renders a token followed by its comments. Keywords are upper-cased.
func (p *printer) token(t parser.Token) string {
	text := t.Text
	if t.Kind.IsKeyword() {
		text = strings.ToUpper(text)
	}

	for _, c := range t.Comments {
		text += p.comment(c)
	}

	return text
}

func (p *printer) tokens(toks []parser.Token) string {
	parts := make([]string, 0, len(toks))
	for _, t := range toks {
		parts = append(parts, p.token(t))
	}

	return strings.Join(parts, " ")
}

// comment renders an inline comment after its token and an alone comment on
// a line of its own; both end the current line.
func (p *printer) comment(c parser.Comment) string {
	if p.style.DropComments {
		return ""
	}
	p.kept++

	text := "--"
	if body := strings.TrimSpace(strings.TrimPrefix(c.Text, "--")); body != "" {
		text += " " + body
	}

	if c.Alone {
		return "\n" + text + "\n"
	}

	return " " + text + "\n"
}

// indent pushes every line after the first one level deeper.
func (p *printer) indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+p.tab)
}

// block renders content on its own indented lines between open and close.
func (p *printer) block(open, content, close string) string {
	nl := p.style.Newline
	return open + nl + p.tab + p.indent(content) + nl + close
}
