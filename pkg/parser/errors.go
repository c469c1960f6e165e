package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// EndOfInput is the offset reported when the input ended before the query
// was complete.
const EndOfInput = -1

var (
	_ Error = (*LexError)(nil)
	_ Error = (*ParseError)(nil)
)

type (
	// Error is implemented by LexError and ParseError. Offset returns the
	// zero-based byte offset of the failure or EndOfInput.
	Error interface {
		participle.Error
		Offset() int
	}

	// LexError is returned when a character of the input matches no token
	// pattern (for example an unterminated string).
	LexError struct {
		Pos  lexer.Position
		Char rune
	}

	// ParseError is returned when the token stream does not match the
	// grammar. Unexpected is the first token that could not be consumed; it
	// has kind EOF when the input ended prematurely.
	ParseError struct {
		Unexpected Token
	}
)

func newLexError(text string, pos lexer.Position) *LexError {
	char, _ := utf8.DecodeRuneInString(text[pos.Offset:])
	return &LexError{Pos: pos, Char: char}
}

func (e *LexError) Error() string            { return participle.FormatError(e) }
func (e *LexError) Position() lexer.Position { return e.Pos }
func (e *LexError) Offset() int              { return e.Pos.Offset }

func (e *LexError) Message() string {
	switch e.Char {
	case '\'', '"', '`':
		return fmt.Sprintf("unterminated string starting with %q", e.Char)
	default:
		return fmt.Sprintf("unexpected character %q", e.Char)
	}
}

func (e *ParseError) Error() string            { return participle.FormatError(e) }
func (e *ParseError) Position() lexer.Position { return e.Unexpected.Pos }

func (e *ParseError) Offset() int {
	if e.Unexpected.Kind == EOF {
		return EndOfInput
	}

	return e.Unexpected.Offset()
}

func (e *ParseError) Message() string {
	if e.Unexpected.Kind == EOF {
		return "unexpected end of input"
	}

	return fmt.Sprintf("unexpected token %q", e.Unexpected.Text)
}

// parseError converts a grammar failure into a ParseError at the token the
// grammar stopped on.
func (l *lowering) parseError(err error) error {
	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		return &ParseError{Unexpected: l.token(unexpected.Unexpected)}
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{Unexpected: l.tokenAt(perr.Position())}
	}

	return errors.Wrap(err, "failed to parse")
}
