package parser

import (
	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/lexer"
	"github.com/ecsdsl/compiler/internal/loc"
)

// parseComponent parses a "component"/"single_component" declaration.
// Assumes the cursor's next token is the component/single_component
// keyword (the caller peeked to decide to dispatch here).
func parseComponent(cur *lexer.Cursor) (*ast.ComponentDecl, *Error) {
	kw, kwTok, err := cur.PopIdentifier()
	if err != nil {
		return nil, fromCursorErr(err)
	}

	var variety ast.ComponentVariety
	switch kw {
	case ast.ComponentKeyword:
		variety = ast.VarietyComponent
	case ast.SingleComponentKeyword:
		variety = ast.VarietySingleComponent
	default:
		return nil, errAt(diag.CodeParseUnexpectedIdentifier, kwTok.Span.Start,
			"Expected %q or %q, got %q", ast.ComponentKeyword, ast.SingleComponentKeyword, kw)
	}

	id, _, err := cur.PopIdentifier()
	if err != nil {
		return nil, fromCursorErr(err)
	}

	props, end, perr := parseProperties(cur)
	if perr != nil {
		return nil, perr
	}

	return &ast.ComponentDecl{
		ID:         id,
		Variety:    variety,
		Properties: props,
		SpanValue:  loc.NewSpan(kwTok.Span.Start, end),
	}, nil
}
