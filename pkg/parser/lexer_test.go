package parser_test

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/hqlfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	result := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		result = append(result, tok.Kind)
	}
	return result
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
		texts []string
	}{
		{
			name:  "keywords keep their case",
			input: "SeLeCt a FROM t",
			kinds: []Kind{SELECT, LABEL, FROM, LABEL, EOF},
			texts: []string{"SeLeCt", "a", "FROM", "t", ""},
		},
		{
			name:  "blanks and line endings",
			input: "select\ta\r\n  from t\n",
			kinds: []Kind{SELECT, LABEL, FROM, LABEL, EOF},
			texts: []string{"select", "a", "from", "t", ""},
		},
		{
			name:  "labels cover numbers and placeholders",
			input: "select 42, ${var}, @x:y",
			kinds: []Kind{SELECT, LABEL, COMMA, LABEL, COMMA, LABEL, EOF},
			texts: []string{"select", "42", ",", "${var}", ",", "@x:y", ""},
		},
		{
			name:  "strings in every quoting style",
			input: "'a b' \"c\" `d e`",
			kinds: []Kind{STRING, STRING, STRING, EOF},
			texts: []string{"'a b'", `"c"`, "`d e`", ""},
		},
		{
			name:  "templates",
			input: "#{date}# #var",
			kinds: []Kind{TEMPLATE, TEMPLATE, EOF},
			texts: []string{"#{date}#", "#var", ""},
		},
		{
			name:  "comparisons and negation",
			input: "a != b <=> c ! d ~ e",
			kinds: []Kind{LABEL, COMPARISON, LABEL, COMPARISON, LABEL, NOT, LABEL, NOT, LABEL, EOF},
			texts: []string{"a", "!=", "b", "<=>", "c", "!", "d", "~", "e", ""},
		},
		{
			name:  "symbols and punctuation",
			input: "a.b[1]*(c-d);",
			kinds: []Kind{
				LABEL, POINT, LABEL, LBRACKET, LABEL, RBRACKET, SYMBOL,
				LPAREN, LABEL, SYMBOL, LABEL, RPAREN, SEMICOLON, EOF,
			},
			texts: []string{"a", ".", "b", "[", "1", "]", "*", "(", "c", "-", "d", ")", ";", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := Tokenize("", tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.kinds, kinds(stream.Tokens))

			texts := make([]string, 0, len(stream.Tokens))
			for _, tok := range stream.Tokens {
				texts = append(texts, tok.Text)
			}
			require.Equal(t, tt.texts, texts)
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	stream, err := Tokenize("q.hql", "select a\n  from t")
	require.NoError(t, err)
	require.Len(t, stream.Tokens, 5)

	from := stream.Tokens[2]
	require.Equal(t, FROM, from.Kind)
	require.Equal(t, 11, from.Offset())
	require.Equal(t, 2, from.Pos.Line)
	require.Equal(t, 3, from.Pos.Column)
	require.Equal(t, "q.hql", from.Pos.Filename)

	eof := stream.Tokens[4]
	require.Equal(t, EOF, eof.Kind)
	require.Equal(t, 17, eof.Offset())
}

func TestTokenizeComments(t *testing.T) {
	input := "-- header\nselect a -- inline\n  -- alone\nfrom t --tail"

	stream, err := Tokenize("", input)
	require.NoError(t, err)

	require.Len(t, stream.Leading, 1)
	require.Equal(t, "-- header", stream.Leading[0].Text)
	require.True(t, stream.Leading[0].Alone)

	a := stream.Tokens[1]
	require.Equal(t, "a", a.Text)
	require.Len(t, a.Comments, 2)
	require.Equal(t, "-- inline", a.Comments[0].Text)
	require.False(t, a.Comments[0].Alone)
	require.Equal(t, "-- alone", a.Comments[1].Text)
	require.True(t, a.Comments[1].Alone)

	table := stream.Tokens[3]
	require.Equal(t, "t", table.Text)
	require.Len(t, table.Comments, 1)
	require.Equal(t, "--tail", table.Comments[0].Text)
	require.False(t, table.Comments[0].Alone)

	require.Empty(t, stream.Tokens[0].Comments)
	require.Empty(t, stream.Tokens[2].Comments)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		offset  int
		message string
	}{
		{"unterminated simple string", "select 'unterminated", 7, `unterminated string starting with '\''`},
		{"unterminated double string", `select "abc`, 7, `unterminated string starting with '"'`},
		{"string across lines", "select `a\nb`", 7, "unterminated string starting with '`'"},
		{"unsupported character", "select a ? b", 9, `unexpected character '?'`},
		{"form feed", "select a\fb", 8, `unexpected character '\f'`},
		{"vertical tab", "select\va", 6, `unexpected character '\v'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize("", tt.input)
			require.Error(t, err)

			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr))
			require.Equal(t, tt.offset, lexErr.Offset())
			require.Equal(t, tt.message, lexErr.Message())
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	require.Equal(t, SELECT, LookupKeyword("SELECT"))
	require.Equal(t, PARTITION, LookupKeyword("PARTITION"))
	require.Equal(t, OVER, LookupKeyword("over"))
	require.Equal(t, LABEL, LookupKeyword("selected"))
	require.True(t, NOT.IsKeyword())
	require.False(t, SYMBOL.IsKeyword())
	require.Equal(t, "JOIN", JOIN.String())
}
