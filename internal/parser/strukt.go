package parser

import (
	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/lexer"
	"github.com/ecsdsl/compiler/internal/loc"
)

// parseStruct parses a "struct" declaration. Assumes the cursor's next
// token is the struct keyword.
func parseStruct(cur *lexer.Cursor) (*ast.StructDecl, *Error) {
	kw, kwTok, err := cur.PopIdentifier()
	if err != nil {
		return nil, fromCursorErr(err)
	}
	if kw != ast.StructKeyword {
		return nil, errAt(diag.CodeParseUnexpectedIdentifier, kwTok.Span.Start, "Expected %q, got %q", ast.StructKeyword, kw)
	}

	id, _, err := cur.PopIdentifier()
	if err != nil {
		return nil, fromCursorErr(err)
	}

	props, end, perr := parseProperties(cur)
	if perr != nil {
		return nil, perr
	}

	return &ast.StructDecl{
		ID:         id,
		Properties: props,
		SpanValue:  loc.NewSpan(kwTok.Span.Start, end),
	}, nil
}
