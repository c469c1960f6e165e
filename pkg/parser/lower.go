package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// numericChars are the non-digit characters allowed in a numeric expression.
const numericChars = ".+-*/^%&|()=<>!~,$"

// lowering turns grammar nodes into the AST. Grammar tokens are swapped back
// for the stream tokens, which carry the comments.
type lowering struct {
	tokens map[int]Token
}

func newLowering(stream *Stream) *lowering {
	tokens := make(map[int]Token, len(stream.Tokens))
	for _, tok := range stream.Tokens {
		tokens[tok.Offset()] = tok
	}

	return &lowering{tokens: tokens}
}

func (l *lowering) token(t lexer.Token) Token {
	if t.EOF() {
		return Token{Kind: EOF, Pos: t.Pos}
	}

	if tok, ok := l.tokens[t.Pos.Offset]; ok && tok.Kind == Kind(t.Type) {
		return tok
	}

	return Token{Kind: Kind(t.Type), Text: t.Value, Pos: t.Pos}
}

// tokenAt returns the stream token at pos, or an EOF token when none starts
// there.
func (l *lowering) tokenAt(pos lexer.Position) Token {
	if tok, ok := l.tokens[pos.Offset]; ok {
		return tok
	}

	return Token{Kind: EOF, Pos: pos}
}

func (l *lowering) optional(t *lexer.Token) *Token {
	if t == nil {
		return nil
	}

	tok := l.token(*t)
	return &tok
}

func (l *lowering) tokenList(toks []lexer.Token) []Token {
	if len(toks) == 0 {
		return nil
	}

	result := make([]Token, 0, len(toks))
	for _, t := range toks {
		result = append(result, l.token(t))
	}

	return result
}

func (l *lowering) query(n *queryNode) *Query {
	return &Query{
		Body:       l.chain(n.Body),
		Semicolons: l.tokenList(n.Semicolons),
	}
}

// statement folds UNION and EXCEPT to the left: a UNION b EXCEPT c is
// (a UNION b) EXCEPT c.
func (l *lowering) statement(n *statementNode) Statement {
	left := l.operand(n.Left)
	for _, c := range n.Right {
		left = &Combine{Left: left, Operator: l.tokenList(c.Operator), Right: l.operand(c.Operand)}
	}

	return left
}

func (l *lowering) operand(n *operandNode) Statement {
	if n.Select != nil {
		return l.selectStatement(n.Select)
	}

	return &Grouped{
		Open:      l.token(*n.Open),
		Statement: l.statement(n.Statement),
		Close:     l.token(*n.Close),
	}
}

func (l *lowering) selectStatement(n *selectNode) *Select {
	sel := &Select{
		Keyword:  l.token(n.Select),
		Modifier: l.optional(n.Modifier),
		Columns:  l.list(n.Columns),
	}

	for _, c := range n.Clauses {
		sel.Clauses = append(sel.Clauses, l.clause(c))
	}

	return sel
}

func (l *lowering) clause(n *clauseNode) Clause {
	switch {
	case n.Keyword != nil:
		return &KeywordClause{Keyword: l.token(n.Keyword.Keyword), Body: l.list(n.Keyword.Body)}
	case n.By != nil:
		return l.byClause(n.By)
	default:
		return &JoinClause{
			Prefixes:  l.tokenList(n.Join.Prefixes),
			Join:      l.token(n.Join.Join),
			Target:    l.list(n.Join.Target),
			On:        l.optional(n.Join.On),
			Condition: l.list(n.Join.Condition),
		}
	}
}

func (l *lowering) byClause(n *byClauseNode) *ByClause {
	return &ByClause{Keyword: l.token(n.Keyword), By: l.token(n.By), Body: l.list(n.Body)}
}

func (l *lowering) list(n *listNode) *List {
	if n == nil {
		return nil
	}

	list := &List{Items: []Expr{l.chain(n.Head)}}
	for _, item := range n.Tail {
		list.Commas = append(list.Commas, l.token(item.Comma))
		list.Items = append(list.Items, l.chain(item.Expr))
	}

	return list
}

func (l *lowering) chain(n *chainNode) Expr {
	if n.Prefix != nil {
		return &Prefix{Operator: l.token(*n.Prefix), Inner: l.chain(n.Operand)}
	}

	left := l.term(n.Term)

	tail := n.Tail
	switch {
	case tail == nil:
		return left
	case tail.Point != nil:
		return &MemberAccess{Left: left, Point: l.token(*tail.Point), Right: l.chain(tail.Member)}
	case tail.Operator != nil:
		return &Infix{Left: left, Operator: l.token(*tail.Operator), Right: l.chain(tail.Right)}
	case tail.Bool != nil:
		return &Bool{Left: left, Operator: l.token(*tail.Bool), Right: l.chain(tail.Operand)}
	}

	rest := l.chain(tail.Next)
	if adj, ok := rest.(*Adjacent); ok {
		return &Adjacent{Items: append([]Expr{left}, adj.Items...)}
	}

	return &Adjacent{Items: []Expr{left, rest}}
}

func (l *lowering) term(n *termNode) Expr {
	switch {
	case n.Ident != nil:
		return &Ident{Token: l.token(*n.Ident)}
	case n.String != nil:
		return &String{Token: l.token(*n.String)}
	case n.Template != nil:
		return &Template{Token: l.token(*n.Template)}
	case n.Value != nil:
		return &KeywordValue{Token: l.token(*n.Value)}
	case n.Case != nil:
		return l.caseWhen(n.Case)
	case n.Over != nil:
		return l.over(n.Over)
	case n.Bracket != nil:
		return &BracketList{
			Open:  l.token(n.Bracket.Open),
			Body:  l.list(n.Bracket.Body),
			Close: l.token(n.Bracket.Close),
		}
	case n.Statement != nil:
		return &Subquery{Statement: l.statement(n.Statement)}
	default:
		return l.parenthesized(n.Paren)
	}
}

func (l *lowering) caseWhen(n *caseNode) *CaseWhen {
	cw := &CaseWhen{Case: l.token(n.Case), End: l.token(n.End)}
	for _, b := range n.Branches {
		cw.Branches = append(cw.Branches, &WhenBranch{
			When:      l.token(b.When),
			Condition: l.chain(b.Condition),
			Then:      l.token(b.Then),
			Result:    l.chain(b.Result),
		})
	}

	if n.Else != nil {
		cw.Else = &ElseBranch{Else: l.token(n.Else.Else), Result: l.chain(n.Else.Result)}
	}

	return cw
}

func (l *lowering) over(n *overNode) *Over {
	over := &Over{Over: l.token(n.Over), Open: l.token(n.Open), Close: l.token(n.Close)}
	for _, c := range n.Clauses {
		over.Clauses = append(over.Clauses, l.byClause(c))
	}

	return over
}

func (l *lowering) parenthesized(n *parenNode) *Parenthesized {
	paren := &Parenthesized{
		Open:  l.token(n.Open),
		Body:  l.list(n.Body),
		Close: l.token(n.Close),
	}

	if paren.Body != nil && len(n.Tokens) > 2 {
		paren.Numeric = isNumeric(l.tokenList(n.Tokens[1 : len(n.Tokens)-1]))
	}

	return paren
}

// isNumeric reports whether the tokens only contain digits, arithmetic and
// comparison characters, and carry no comments.
func isNumeric(tokens []Token) bool {
	for _, tok := range tokens {
		if len(tok.Comments) > 0 {
			return false
		}

		for _, r := range tok.Text {
			if (r < '0' || r > '9') && !strings.ContainsRune(numericChars, r) {
				return false
			}
		}
	}

	return true
}
