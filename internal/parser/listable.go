package parser

import (
	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/lexer"
	"github.com/ecsdsl/compiler/internal/loc"
)

// parseListablePrimitive parses either a bare primitive or a bracketed
// fixed-capacity array of one: "u32" or "[u32 16]".
func parseListablePrimitive(cur *lexer.Cursor) (ast.Listable, *Error) {
	if !cur.PeekKind(lexer.KindLBracket) {
		prim, err := parsePrimitive(cur)
		if err != nil {
			return ast.Listable{}, err
		}
		return ast.Listable{Kind: ast.Single, Elem: prim, Span: prim.Span}, nil
	}

	open, err := cur.PopExpected(lexer.KindLBracket)
	if err != nil {
		return ast.Listable{}, fromCursorErr(err)
	}

	elem, perr := parsePrimitive(cur)
	if perr != nil {
		return ast.Listable{}, perr
	}

	size, sizeTok, nerr := cur.PopNumber()
	if nerr != nil {
		return ast.Listable{}, fromCursorErr(nerr)
	}
	maxSize := int(size)
	if maxSize <= 0 {
		return ast.Listable{}, errAt(diag.CodeParseListSize, sizeTok.Span.Start, "List size must be greater than 0")
	}

	close, cerr := cur.PopExpected(lexer.KindRBracket)
	if cerr != nil {
		return ast.Listable{}, fromCursorErr(cerr)
	}

	return ast.Listable{
		Kind:    ast.List,
		Elem:    elem,
		MaxSize: maxSize,
		Span:    loc.NewSpan(open.Span.Start, close.Span.End),
	}, nil
}
