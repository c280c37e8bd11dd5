package parser

import (
	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/lexer"
	"github.com/ecsdsl/compiler/internal/loc"
)

// parsePrimitive consumes a single identifier token and resolves it to
// either a builtin scalar kind or an Identifier reference to a struct.
func parsePrimitive(cur *lexer.Cursor) (ast.Primitive, *Error) {
	id, tok, err := cur.PopIdentifier()
	if err != nil {
		return ast.Primitive{}, fromCursorErr(err)
	}

	span := loc.NewSpan(tok.Span.Start, tok.Span.End)
	if kind, ok := ast.LookupPrimitiveKind(id); ok {
		return ast.Primitive{Kind: kind, Span: span}, nil
	}
	return ast.Primitive{Kind: ast.Identifier, Name: id, Span: span}, nil
}

func fromCursorErr(e *lexer.Error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Span: e.Span}
}
