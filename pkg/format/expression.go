package format

import (
	"strings"

	"github.com/pseudomuto/hqlfmt/pkg/parser"
)

var bracketTightener = strings.NewReplacer(" )", ")", "( ", "(")

func (p *printer) expr(e parser.Expr) string {
	switch x := e.(type) {
	case *parser.Ident:
		return p.token(x.Token)
	case *parser.String:
		return p.token(x.Token)
	case *parser.Template:
		return p.token(x.Token)
	case *parser.KeywordValue:
		return p.token(x.Token)
	case *parser.Subquery:
		return p.statement(x.Statement)
	case *parser.CaseWhen:
		return p.caseWhen(x)
	case *parser.Over:
		return p.over(x)
	case *parser.BracketList:
		return p.bracketList(x)
	case *parser.Parenthesized:
		return p.parenthesized(x)
	case *parser.MemberAccess:
		return p.expr(x.Left) + p.token(x.Point) + p.expr(x.Right)
	case *parser.Prefix:
		return p.prefix(x)
	case *parser.Infix:
		return p.expr(x.Left) + " " + p.token(x.Operator) + " " + p.expr(x.Right)
	case *parser.Bool:
		return p.expr(x.Left) + p.style.ClauseSeparator + p.token(x.Operator) + " " + p.expr(x.Right)
	case *parser.Adjacent:
		return p.adjacent(x)
	default:
		return ""
	}
}

// caseWhen renders every branch one level deeper than CASE and closes with
// END back at the level of CASE.
func (p *printer) caseWhen(c *parser.CaseWhen) string {
	sep := p.style.ClauseSeparator

	branches := make([]string, 0, len(c.Branches)+1)
	for _, b := range c.Branches {
		branches = append(branches,
			p.token(b.When)+" "+p.indent(p.expr(b.Condition))+" "+p.token(b.Then)+" "+p.expr(b.Result),
		)
	}
	if c.Else != nil {
		branches = append(branches, p.token(c.Else.Else)+" "+p.expr(c.Else.Result))
	}

	return p.token(c.Case) + sep + p.tab + p.indent(strings.Join(branches, sep)) + sep + p.token(c.End)
}

// over keeps each window clause on a single line.
func (p *printer) over(o *parser.Over) string {
	clauses := make([]string, 0, len(o.Clauses))
	for _, c := range o.Clauses {
		kept := p.kept
		text := p.clause(c)
		if p.kept == kept {
			text = strings.ReplaceAll(strings.ReplaceAll(text, "\t", " "), "\n", "")
		}
		clauses = append(clauses, text)
	}

	return p.token(o.Over) + " " + p.block(p.token(o.Open), strings.Join(clauses, p.style.ClauseSeparator), p.token(o.Close))
}

// bracketList always renders on a single line.
func (p *printer) bracketList(b *parser.BracketList) string {
	if b.Body == nil {
		return p.token(b.Open) + p.token(b.Close)
	}

	kept := p.kept
	inner := p.list(b.Body)
	if p.kept == kept {
		inner = strings.ReplaceAll(strings.ReplaceAll(inner, "\n", " "), "\t", "")
		inner = bracketTightener.Replace(inner)
	}

	return p.token(b.Open) + inner + p.token(b.Close)
}

// parenthesized keeps numeric content on one line and expands anything else
// into an indented block.
func (p *printer) parenthesized(paren *parser.Parenthesized) string {
	if paren.Body == nil {
		return p.token(paren.Open) + p.token(paren.Close)
	}

	inner := p.list(paren.Body)
	if paren.Numeric {
		return p.token(paren.Open) + strings.ReplaceAll(inner, "\n", " ") + p.token(paren.Close)
	}

	return p.block(p.token(paren.Open), inner, p.token(paren.Close))
}

func (p *printer) prefix(x *parser.Prefix) string {
	op := p.token(x.Operator)

	if x.Operator.Kind == parser.BETWEEN {
		kept := p.kept
		rest := p.expr(x.Inner)
		if p.kept == kept {
			rest = strings.ReplaceAll(rest, "\n", " ")
		}
		return op + " " + rest
	}

	// ! and ~ bind directly to their operand.
	if len(x.Operator.Text) == 1 {
		return op + p.expr(x.Inner)
	}

	return op + " " + p.expr(x.Inner)
}

// adjacent separates juxtaposed items with a single space, except before an
// opening parenthesis or bracket and after a sign.
func (p *printer) adjacent(a *parser.Adjacent) string {
	var sb strings.Builder
	prev := ""
	for i, item := range a.Items {
		text := p.expr(item)
		if i > 0 && !strings.HasPrefix(text, "(") && !strings.HasPrefix(text, "[") && prev != "+" && prev != "-" {
			sb.WriteString(" ")
		}
		sb.WriteString(text)
		prev = text
	}

	return sb.String()
}
