package lexer

import (
	"fmt"

	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/loc"
)

// Cursor is a consume-pointer view over a token slice. Unlike the
// reference implementation's Vec::remove(0) (O(n) per pop), it advances
// an index so every operation is O(1); insertHead (parser pushback) is
// the one exception, staying O(1) amortized since pushback is rare and
// always of a single token.
type Cursor struct {
	tokens       []Token
	pos          int
	lastLocation loc.Location
}

// NewCursor builds a cursor over tokens. start seeds LastLocation for the
// "expected X, got nothing" diagnostic emitted once the stream is empty.
func NewCursor(tokens []Token, start loc.Location) *Cursor {
	return &Cursor{tokens: tokens, lastLocation: start}
}

// LastLocation is the end location of the most recently popped token, or
// the cursor's start location if nothing has been popped yet.
func (c *Cursor) LastLocation() loc.Location { return c.lastLocation }

// IsEmpty reports whether the cursor has no more tokens to pop.
func (c *Cursor) IsEmpty() bool { return c.pos >= len(c.tokens) }

// Pop removes and returns the next token, or false if the stream is empty.
func (c *Cursor) Pop() (Token, bool) {
	if c.IsEmpty() {
		return Token{}, false
	}
	t := c.tokens[c.pos]
	c.pos++
	c.lastLocation = t.Span.End
	return t, true
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	return c.PeekNth(0)
}

// PeekNth returns the token n positions ahead without consuming anything.
func (c *Cursor) PeekNth(n int) (Token, bool) {
	idx := c.pos + n
	if idx < 0 || idx >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[idx], true
}

// PeekKind reports whether the next token has the given kind.
func (c *Cursor) PeekKind(k Kind) bool {
	t, ok := c.Peek()
	return ok && t.Kind == k
}

// PeekIdentifier reports whether the next token is the identifier id.
func (c *Cursor) PeekIdentifier(id string) bool {
	t, ok := c.Peek()
	return ok && t.Kind == KindIdent && t.Text == id
}

// InsertHead pushes a token back onto the front of the stream, used by
// the parser to undo a lookahead peek that turned out to belong to the
// next production.
func (c *Cursor) InsertHead(t Token) {
	if c.pos > 0 {
		c.pos--
		c.tokens[c.pos] = t
		return
	}
	c.tokens = append([]Token{t}, c.tokens...)
}

func (c *Cursor) unexpected(expectedDesc string, got Token) *Error {
	return &Error{
		Code:    diag.CodeParseUnexpectedToken,
		Message: fmt.Sprintf("Expected %s, got %s", expectedDesc, got.DisplayName()),
		Span:    loc.NewSpan(got.Span.Start, got.Span.Start),
	}
}

func (c *Cursor) nothing(expectedDesc string) *Error {
	return &Error{
		Code:    diag.CodeParseExpectedToken,
		Message: fmt.Sprintf("Expected %s, got nothing!", expectedDesc),
		Span:    loc.NewSpan(c.lastLocation, c.lastLocation),
	}
}

// PopExpected consumes the next token, verifying it has kind k.
func (c *Cursor) PopExpected(k Kind) (Token, *Error) {
	t, ok := c.Pop()
	if !ok {
		return Token{}, c.nothing(string(k))
	}
	if t.Kind != k {
		return Token{}, c.unexpected(string(k), t)
	}
	return t, nil
}

// PopIdentifier consumes the next token, verifying it is an identifier.
func (c *Cursor) PopIdentifier() (string, Token, *Error) {
	t, ok := c.Pop()
	if !ok {
		return "", Token{}, c.nothing("identifier")
	}
	if t.Kind != KindIdent {
		return "", Token{}, c.unexpected("identifier", t)
	}
	return t.Text, t, nil
}

// PopNumber consumes the next token, verifying it is a number.
func (c *Cursor) PopNumber() (float64, Token, *Error) {
	t, ok := c.Pop()
	if !ok {
		return 0, Token{}, c.nothing("number")
	}
	if t.Kind != KindNumber {
		return 0, Token{}, c.unexpected("number", t)
	}
	return t.Num, t, nil
}

// PopComment consumes the next token, verifying it is a comment.
func (c *Cursor) PopComment() ([]string, Token, *Error) {
	t, ok := c.Pop()
	if !ok {
		return nil, Token{}, c.nothing("comment")
	}
	if t.Kind != KindComment {
		return nil, Token{}, c.unexpected("comment", t)
	}
	return t.Lines, t, nil
}
