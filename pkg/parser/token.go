package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind classifies a token. Kind names double as the symbol names of the
// grammar.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	LABEL
	STRING
	TEMPLATE

	COMMA
	COMPARISON
	SYMBOL
	SEMICOLON
	POINT
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET

	// Keywords. NOT is also produced by the "!" and "~" characters.
	SELECT
	ALL
	DISTINCT
	FROM
	WHERE
	BY
	GROUP
	ORDER
	CLUSTER
	DISTRIBUTE
	SORT
	PARTITION
	HAVING
	LIMIT
	AS
	CASE
	WHEN
	THEN
	ELSE
	END
	OR
	AND
	NOT
	IS
	IN
	TRUE
	FALSE
	NULL
	COALESCE
	CAST
	CONCAT
	UNION
	EXCEPT
	BETWEEN
	ASC
	DESC
	JOIN
	ON
	INNER
	OUTER
	LEFT
	RIGHT
	FULL
	SEMI
	CROSS
	NATURAL
	WITH
	OPTION
	OVER
)

var (
	// kindNames holds the symbolic name of every kind, keywords included.
	kindNames = func() map[Kind]string {
		names := map[Kind]string{
			ILLEGAL:    "ILLEGAL",
			EOF:        "EOF",
			LABEL:      "LABEL",
			STRING:     "STRING",
			TEMPLATE:   "TEMPLATE",
			COMMA:      "COMMA",
			COMPARISON: "COMPARISON",
			SYMBOL:     "SYMBOL",
			SEMICOLON:  "SEMICOLON",
			POINT:      "POINT",
			LPAREN:     "LPAREN",
			RPAREN:     "RPAREN",
			LBRACKET:   "LBRACKET",
			RBRACKET:   "RBRACKET",
		}

		for word, kind := range keywords {
			names[kind] = strings.ToUpper(word)
		}

		return names
	}()

	// keywords maps the lower-cased reserved words to their kinds.
	keywords = map[string]Kind{
		"select":     SELECT,
		"all":        ALL,
		"distinct":   DISTINCT,
		"from":       FROM,
		"where":      WHERE,
		"by":         BY,
		"group":      GROUP,
		"order":      ORDER,
		"cluster":    CLUSTER,
		"distribute": DISTRIBUTE,
		"sort":       SORT,
		"partition":  PARTITION,
		"having":     HAVING,
		"limit":      LIMIT,
		"as":         AS,
		"case":       CASE,
		"when":       WHEN,
		"then":       THEN,
		"else":       ELSE,
		"end":        END,
		"or":         OR,
		"and":        AND,
		"not":        NOT,
		"is":         IS,
		"in":         IN,
		"true":       TRUE,
		"false":      FALSE,
		"null":       NULL,
		"coalesce":   COALESCE,
		"cast":       CAST,
		"concat":     CONCAT,
		"union":      UNION,
		"except":     EXCEPT,
		"between":    BETWEEN,
		"asc":        ASC,
		"desc":       DESC,
		"join":       JOIN,
		"on":         ON,
		"inner":      INNER,
		"outer":      OUTER,
		"left":       LEFT,
		"right":      RIGHT,
		"full":       FULL,
		"semi":       SEMI,
		"cross":      CROSS,
		"natural":    NATURAL,
		"with":       WITH,
		"option":     OPTION,
		"over":       OVER,
	}
)

// String returns the symbolic name of the kind, such as "LPAREN" or "SELECT".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "ILLEGAL"
}

// IsKeyword reports whether the kind is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= SELECT
}

// LookupKeyword returns the keyword kind for word, ignoring case. Words that
// are not reserved return LABEL.
func LookupKeyword(word string) Kind {
	if kind, ok := keywords[strings.ToLower(word)]; ok {
		return kind
	}

	return LABEL
}

type (
	// Token is a single lexeme of the input. Text is the original lexeme and
	// is never modified; keywords are upper-cased only when rendered.
	Token struct {
		Kind     Kind
		Text     string
		Pos      lexer.Position
		Comments []Comment
	}

	// Comment is a "--" comment running to the end of its line. Alone
	// comments are the first non-blank content of their line.
	Comment struct {
		Text  string
		Alone bool
		Pos   lexer.Position
	}

	// Stream is the result of tokenizing a query. Comments found before the
	// first token are kept in Leading, every other comment is attached to
	// the token that precedes it. Tokens always ends with an EOF token.
	Stream struct {
		Leading []Comment
		Tokens  []Token
	}
)

// Offset returns the zero-based byte offset of the token in the input.
func (t Token) Offset() int {
	return t.Pos.Offset
}

// String returns the token text, or "end of input" for the EOF token.
func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}

	return t.Text
}
