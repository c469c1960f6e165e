package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar runs over the token stream produced by Tokenize, so rule
// references are kind names. Lookahead is zero: once a branch consumes a
// token it is committed and a mismatch is reported at the offending token.
// The two places that need to see further ahead use lookahead groups.
var (
	queryParser = participle.MustBuild[queryNode](
		participle.Lexer(newStreamDefinition()),
		participle.UseLookahead(0),
	)

	scriptParser = participle.MustBuild[scriptNode](
		participle.Lexer(newStreamDefinition()),
		participle.UseLookahead(0),
	)
)

type (
	scriptNode struct {
		Queries []*queryNode `parser:"@@*"`
	}

	queryNode struct {
		Body       *chainNode    `parser:"@@"`
		Semicolons []lexer.Token `parser:"@( SEMICOLON* )"`
	}

	statementNode struct {
		Left  *operandNode   `parser:"@@"`
		Right []*combineNode `parser:"@@*"`
	}

	combineNode struct {
		Operator []lexer.Token `parser:"@( UNION ( ALL | DISTINCT )? | EXCEPT )"`
		Operand  *operandNode  `parser:"@@"`
	}

	// operandNode is a SELECT or a statement in parentheses. A parenthesis
	// only opens a statement when SELECT follows it.
	operandNode struct {
		Select    *selectNode    `parser:"  @@"`
		Open      *lexer.Token   `parser:"| (?= LPAREN SELECT) @LPAREN"`
		Statement *statementNode `parser:"  @@"`
		Close     *lexer.Token   `parser:"  @RPAREN"`
	}

	selectNode struct {
		Select   lexer.Token   `parser:"@SELECT"`
		Modifier *lexer.Token  `parser:"@( DISTINCT | ALL )?"`
		Columns  *listNode     `parser:"@@"`
		Clauses  []*clauseNode `parser:"@@*"`
	}

	clauseNode struct {
		Keyword *keywordClauseNode `parser:"  @@"`
		By      *byClauseNode      `parser:"| @@"`
		Join    *joinClauseNode    `parser:"| @@"`
	}

	keywordClauseNode struct {
		Keyword lexer.Token `parser:"@( FROM | WHERE | LIMIT | HAVING | OPTION )"`
		Body    *listNode   `parser:"@@"`
	}

	byClauseNode struct {
		Keyword lexer.Token `parser:"@( GROUP | ORDER | CLUSTER | DISTRIBUTE | SORT | PARTITION )"`
		By      lexer.Token `parser:"@BY"`
		Body    *listNode   `parser:"@@"`
	}

	joinClauseNode struct {
		Prefixes  []lexer.Token `parser:"@( ( INNER | OUTER | LEFT | RIGHT | FULL | SEMI | CROSS | NATURAL )* )"`
		Join      lexer.Token   `parser:"@JOIN"`
		Target    *listNode     `parser:"@@"`
		On        *lexer.Token  `parser:"( @ON"`
		Condition *listNode     `parser:"  @@ )?"`
	}

	listNode struct {
		Head *chainNode  `parser:"@@"`
		Tail []*itemNode `parser:"@@*"`
	}

	itemNode struct {
		Comma lexer.Token `parser:"@COMMA"`
		Expr  *chainNode  `parser:"@@"`
	}

	// chainNode is a prefixed chain or a term with an optional tail. Every
	// form nests to the right: a + b * c is a + (b * c).
	chainNode struct {
		Prefix  *lexer.Token `parser:"  @( NOT | BETWEEN )"`
		Operand *chainNode   `parser:"  @@"`
		Term    *termNode    `parser:"| @@"`
		Tail    *tailNode    `parser:"  @@?"`
	}

	// tailNode is what follows a term. A symbol is only an infix operator
	// when an expression starts right after it, otherwise it is a value
	// adjacent to the term (the "*" of count(*)).
	tailNode struct {
		Point    *lexer.Token `parser:"  @POINT"`
		Member   *chainNode   `parser:"  @@"`
		Operator *lexer.Token `parser:"| ( (?= SYMBOL ( LABEL | STRING | TEMPLATE | DISTINCT | ALL | NULL | TRUE | FALSE | COALESCE | CAST | CONCAT | ASC | DESC | SYMBOL | CASE | SELECT | OVER | LPAREN | LBRACKET | NOT | BETWEEN ) ) @SYMBOL | @( COMPARISON | AS | IS | IN | WITH ) )"`
		Right    *chainNode   `parser:"  @@"`
		Bool     *lexer.Token `parser:"| @( AND | OR )"`
		Operand  *chainNode   `parser:"  @@"`
		Next     *chainNode   `parser:"| @@"`
	}

	termNode struct {
		Ident     *lexer.Token   `parser:"  @LABEL"`
		String    *lexer.Token   `parser:"| @STRING"`
		Template  *lexer.Token   `parser:"| @TEMPLATE"`
		Value     *lexer.Token   `parser:"| @( DISTINCT | ALL | NULL | TRUE | FALSE | COALESCE | CAST | CONCAT | ASC | DESC | SYMBOL )"`
		Case      *caseNode      `parser:"| @@"`
		Over      *overNode      `parser:"| @@"`
		Bracket   *bracketNode   `parser:"| @@"`
		Statement *statementNode `parser:"| @@"`
		Paren     *parenNode     `parser:"| @@"`
	}

	caseNode struct {
		Case     lexer.Token `parser:"@CASE"`
		Branches []*whenNode `parser:"@@+"`
		Else     *elseNode   `parser:"@@?"`
		End      lexer.Token `parser:"@END"`
	}

	whenNode struct {
		When      lexer.Token `parser:"@WHEN"`
		Condition *chainNode  `parser:"@@"`
		Then      lexer.Token `parser:"@THEN"`
		Result    *chainNode  `parser:"@@"`
	}

	elseNode struct {
		Else   lexer.Token `parser:"@ELSE"`
		Result *chainNode  `parser:"@@"`
	}

	overNode struct {
		Over    lexer.Token     `parser:"@OVER"`
		Open    lexer.Token     `parser:"@LPAREN"`
		Clauses []*byClauseNode `parser:"@@+"`
		Close   lexer.Token     `parser:"@RPAREN"`
	}

	bracketNode struct {
		Open  lexer.Token `parser:"@LBRACKET"`
		Body  *listNode   `parser:"@@?"`
		Close lexer.Token `parser:"@RBRACKET"`
	}

	// parenNode keeps its raw tokens so the numeric check can see them.
	parenNode struct {
		Open   lexer.Token `parser:"@LPAREN"`
		Body   *listNode   `parser:"@@?"`
		Close  lexer.Token `parser:"@RPAREN"`
		Tokens []lexer.Token
	}
)
