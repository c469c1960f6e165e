package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// hqlLexer defines the lexical grammar. Rules are tried in order and the
	// leading characters of the patterns never overlap, except Comparison
	// which has to win over Not for "!=".
	hqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Label", Pattern: `[a-zA-Z0-9${}_:@]+`},
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Template", Pattern: `#[a-zA-Z0-9${}_:@()\[\]]+#?`},
		{Name: "StringSimple", Pattern: `'[^'\n]*'`},
		{Name: "StringDouble", Pattern: `"[^"\n]*"`},
		{Name: "StringGrave", Pattern: "`[^`\\n]*`"},
		{Name: "Comparison", Pattern: `!?[=<>]+`},
		{Name: "Not", Pattern: `[!~]`},
		{Name: "Symbol", Pattern: `[*%&+\-/^|]`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Semicolon", Pattern: `;`},
		{Name: "Point", Pattern: `\.`},
		{Name: "LeftParen", Pattern: `\(`},
		{Name: "RightParen", Pattern: `\)`},
		{Name: "LeftBracket", Pattern: `\[`},
		{Name: "RightBracket", Pattern: `\]`},
	})

	ruleKinds = map[string]Kind{
		"Label":        LABEL,
		"Template":     TEMPLATE,
		"StringSimple": STRING,
		"StringDouble": STRING,
		"StringGrave":  STRING,
		"Comparison":   COMPARISON,
		"Not":          NOT,
		"Symbol":       SYMBOL,
		"Comma":        COMMA,
		"Semicolon":    SEMICOLON,
		"Point":        POINT,
		"LeftParen":    LPAREN,
		"RightParen":   RPAREN,
		"LeftBracket":  LBRACKET,
		"RightBracket": RBRACKET,
	}

	tokenKinds = func() map[lexer.TokenType]Kind {
		kinds := make(map[lexer.TokenType]Kind)
		for name, tt := range hqlLexer.Symbols() {
			if kind, ok := ruleKinds[name]; ok {
				kinds[tt] = kind
			}
		}
		return kinds
	}()

	commentType = hqlLexer.Symbols()["Comment"]
)

// Tokenize converts text into a token stream. The name is only used in
// positions and error messages and may be empty.
//
// Labels matching a reserved word (in any case) become keyword tokens while
// keeping their original text. Comments are attached to the token before
// them; comments that precede every token are returned in Stream.Leading.
//
// Example:
//
//	stream, err := parser.Tokenize("", "select a -- the a column\nfrom t")
//	if err != nil {
//		var lexErr *parser.LexError
//		if errors.As(err, &lexErr) {
//			fmt.Println("bad character at", lexErr.Offset())
//		}
//	}
//
// Returns a *LexError when a character matches no token pattern, such as an
// unterminated string.
func Tokenize(name, text string) (*Stream, error) {
	lex, err := hqlLexer.LexString(name, text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lexer")
	}

	stream := &Stream{}
	for {
		tok, err := lex.Next()
		if err != nil {
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				return nil, newLexError(text, lexErr.Pos)
			}
			return nil, errors.Wrap(err, "failed to tokenize")
		}

		if tok.EOF() {
			stream.Tokens = append(stream.Tokens, Token{Kind: EOF, Pos: tok.Pos})
			return stream, nil
		}

		if tok.Type == commentType {
			comment := Comment{Text: tok.Value, Alone: isAlone(text, tok.Pos.Offset), Pos: tok.Pos}
			if n := len(stream.Tokens); n > 0 {
				stream.Tokens[n-1].Comments = append(stream.Tokens[n-1].Comments, comment)
			} else {
				stream.Leading = append(stream.Leading, comment)
			}
			continue
		}

		kind := tokenKinds[tok.Type]
		if kind == LABEL {
			kind = LookupKeyword(tok.Value)
		}

		stream.Tokens = append(stream.Tokens, Token{Kind: kind, Text: tok.Value, Pos: tok.Pos})
	}
}

// isAlone reports whether only blanks separate offset from the start of its
// line.
func isAlone(text string, offset int) bool {
	before := strings.TrimRight(text[:offset], " \t\r")
	return before == "" || strings.HasSuffix(before, "\n")
}

// streamDefinition is the lexer.Definition the grammar is built on. It
// replays a Stream, so token types are kinds and comments never reach the
// grammar.
type streamDefinition struct {
	symbols map[string]lexer.TokenType
}

// streamLexer returns the tokens of a stream in order, then EOF forever.
type streamLexer struct {
	tokens []Token
	next   int
}

// newStreamDefinition names every kind as a grammar symbol. EOF maps to
// participle's own end of input type.
func newStreamDefinition() streamDefinition {
	symbols := make(map[string]lexer.TokenType, len(kindNames))
	for kind, name := range kindNames {
		symbols[name] = lexer.TokenType(kind)
	}
	symbols[EOF.String()] = lexer.EOF

	return streamDefinition{symbols: symbols}
}

func (d streamDefinition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

func (streamDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	stream, err := Tokenize(filename, string(data))
	if err != nil {
		return nil, err
	}

	return newStreamLexer(stream), nil
}

func newStreamLexer(stream *Stream) *streamLexer {
	return &streamLexer{tokens: stream.Tokens}
}

func (l *streamLexer) Next() (lexer.Token, error) {
	if l.next >= len(l.tokens) {
		var pos lexer.Position
		if n := len(l.tokens); n > 0 {
			pos = l.tokens[n-1].Pos
		}
		return lexer.EOFToken(pos), nil
	}

	tok := l.tokens[l.next]
	l.next++

	if tok.Kind == EOF {
		l.next = len(l.tokens)
		return lexer.EOFToken(tok.Pos), nil
	}

	return lexer.Token{Type: lexer.TokenType(tok.Kind), Value: tok.Text, Pos: tok.Pos}, nil
}
