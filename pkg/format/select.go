package format

import (
	"strings"

	"github.com/pseudomuto/hqlfmt/pkg/parser"
)

func (p *printer) statement(stmt parser.Statement) string {
	switch s := stmt.(type) {
	case *parser.Select:
		return p.selectStmt(s)
	case *parser.Combine:
		return p.combine(s)
	case *parser.Grouped:
		return p.block(p.token(s.Open), p.statement(s.Statement), p.token(s.Close))
	default:
		return ""
	}
}

// selectStmt renders SELECT with its columns one level deeper and every
// clause on a line of its own at the statement's level.
//
// Example output:
//
//	SELECT DISTINCT
//		a,
//		b
//	FROM t
//	WHERE a > 1
func (p *printer) selectStmt(s *parser.Select) string {
	sep := p.style.ClauseSeparator

	var sb strings.Builder
	sb.WriteString(p.token(s.Keyword))
	if s.Modifier != nil {
		sb.WriteString(" " + p.token(*s.Modifier))
	}
	sb.WriteString(sep + p.tab + p.indent(p.list(s.Columns)))

	for _, clause := range s.Clauses {
		sb.WriteString(sep + p.clause(clause))
	}

	return sb.String()
}

// combine keeps both sides of UNION/EXCEPT at the same level with the
// operator on a line between them.
func (p *printer) combine(c *parser.Combine) string {
	sep := p.style.ClauseSeparator
	return p.statement(c.Left) + sep + p.tokens(c.Operator) + sep + p.statement(c.Right)
}

func (p *printer) clause(clause parser.Clause) string {
	switch c := clause.(type) {
	case *parser.KeywordClause:
		return p.token(c.Keyword) + " " + p.clauseBody(c.Body)
	case *parser.ByClause:
		return p.token(c.Keyword) + " " + p.token(c.By) + " " + p.clauseBody(c.Body)
	case *parser.JoinClause:
		return p.join(c)
	default:
		return ""
	}
}

// join renders the prefixes, JOIN and the target on one line followed by
// the ON condition one level deeper.
func (p *printer) join(j *parser.JoinClause) string {
	var sb strings.Builder
	if len(j.Prefixes) > 0 {
		sb.WriteString(p.tokens(j.Prefixes) + " ")
	}
	sb.WriteString(p.token(j.Join) + " " + p.clauseBody(j.Target))

	if j.On != nil {
		sb.WriteString(p.style.ClauseSeparator + p.tab + p.token(*j.On) + " " + p.indent(p.list(j.Condition)))
	}

	return sb.String()
}

// clauseBody indents multi-line clause content unless it opens with a
// parenthesis, which already lays out its own block.
func (p *printer) clauseBody(l *parser.List) string {
	body := p.list(l)
	if strings.Contains(body, "\n") && !strings.HasPrefix(body, "(") {
		return p.indent(body)
	}

	return body
}

// list renders one item per line, each but the last followed by its comma.
func (p *printer) list(l *parser.List) string {
	if l == nil {
		return ""
	}

	var sb strings.Builder
	for i, item := range l.Items {
		sb.WriteString(p.expr(item))
		if i < len(l.Commas) {
			sb.WriteString(p.token(l.Commas[i]) + p.style.Newline)
		}
	}

	return sb.String()
}
