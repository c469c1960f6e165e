package parser

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Parse reads a single query from r and parses it. The name is used in
// positions and error messages and may be empty.
//
// Example usage:
//
//	f, err := os.Open("report.hql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	query, err := parser.Parse("report.hql", f)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
// Returns a *LexError or *ParseError when the query is invalid.
func Parse(name string, r io.Reader) (*Query, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	stream, err := Tokenize(name, string(data))
	if err != nil {
		return nil, err
	}

	return ParseTokens(stream)
}

// ParseString parses a single query, optionally terminated by semicolons.
//
// Example usage:
//
//	query, err := parser.ParseString("select a, b from t where a > 1;")
//	if err != nil {
//		var parseErr *parser.ParseError
//		if errors.As(err, &parseErr) {
//			fmt.Println("syntax error at offset", parseErr.Offset())
//		}
//	}
//
//	sel := query.Body.(*parser.Subquery).Statement.(*parser.Select)
//	fmt.Println(len(sel.Columns.Items)) // 2
//
// The top level accepts any expression chain, a SELECT statement being the
// common case. Returns a *LexError or *ParseError when the query is invalid.
func ParseString(text string) (*Query, error) {
	stream, err := Tokenize("", text)
	if err != nil {
		return nil, err
	}

	return ParseTokens(stream)
}

// ParseTokens parses a single query from an already tokenized stream, such
// as one returned by Tokenize. Grammar tokens are matched back to the stream
// by offset to recover their comments.
func ParseTokens(stream *Stream) (*Query, error) {
	lower := newLowering(stream)

	node, err := parseStream(queryParser, stream, lower)
	if err != nil {
		return nil, err
	}

	query := lower.query(node)
	query.Leading = stream.Leading
	return query, nil
}

// ParseScript parses a sequence of semicolon separated queries. A script
// without any token (empty, or only comments) has no queries.
//
// Comments on lines of their own after the last semicolon of a query are
// moved to the leading comments of the next query.
func ParseScript(name, text string) (*Script, error) {
	stream, err := Tokenize(name, text)
	if err != nil {
		return nil, err
	}

	lower := newLowering(stream)

	node, err := parseStream(scriptParser, stream, lower)
	if err != nil {
		return nil, err
	}

	script := &Script{}
	for _, q := range node.Queries {
		script.Queries = append(script.Queries, lower.query(q))
	}

	if len(script.Queries) > 0 {
		script.Queries[0].Leading = stream.Leading
	}

	rebindComments(script.Queries)
	return script, nil
}

func parseStream[G any](p *participle.Parser[G], stream *Stream, lower *lowering) (*G, error) {
	peeker, err := lexer.Upgrade(newStreamLexer(stream))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tokens")
	}

	node, err := p.ParseFromLexer(peeker)
	if err != nil {
		return nil, lower.parseError(err)
	}

	return node, nil
}

// rebindComments moves the alone comments trailing each query's last
// semicolon, and any comment after them, to the next query.
func rebindComments(queries []*Query) {
	for i := 0; i+1 < len(queries); i++ {
		semis := queries[i].Semicolons
		if len(semis) == 0 {
			continue
		}

		last := &semis[len(semis)-1]
		for j, c := range last.Comments {
			if !c.Alone {
				continue
			}

			moved := append([]Comment(nil), last.Comments[j:]...)
			queries[i+1].Leading = append(moved, queries[i+1].Leading...)
			last.Comments = last.Comments[:j:j]
			break
		}
	}
}
