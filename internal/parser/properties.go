package parser

import (
	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/lexer"
	"github.com/ecsdsl/compiler/internal/loc"
)

// parseProperties parses the shared component/struct body grammar: a
// parenthesized single value, a braced field list, or (for neither) a
// bare semicolon tag. It returns the properties and the end location of
// whichever closing token terminated the body.
func parseProperties(cur *lexer.Cursor) (ast.Properties, loc.Location, *Error) {
	switch {
	case cur.PeekKind(lexer.KindLParen):
		if _, err := cur.PopExpected(lexer.KindLParen); err != nil {
			return ast.Properties{}, loc.Location{}, fromCursorErr(err)
		}
		value, err := parseListablePrimitive(cur)
		if err != nil {
			return ast.Properties{}, loc.Location{}, err
		}
		if _, err := cur.PopExpected(lexer.KindRParen); err != nil {
			return ast.Properties{}, loc.Location{}, fromCursorErr(err)
		}
		semi, serr := cur.PopExpected(lexer.KindSemicolon)
		if serr != nil {
			return ast.Properties{}, loc.Location{}, fromCursorErr(serr)
		}
		return ast.Properties{Kind: ast.PropsValue, Value: value}, semi.Span.End, nil

	case cur.PeekKind(lexer.KindLBrace):
		if _, err := cur.PopExpected(lexer.KindLBrace); err != nil {
			return ast.Properties{}, loc.Location{}, fromCursorErr(err)
		}

		var props []ast.Property
		for !cur.IsEmpty() && !cur.PeekKind(lexer.KindRBrace) {
			propType, err := parseListablePrimitive(cur)
			if err != nil {
				return ast.Properties{}, loc.Location{}, err
			}
			name, nameTok, nerr := cur.PopIdentifier()
			if nerr != nil {
				return ast.Properties{}, loc.Location{}, fromCursorErr(nerr)
			}
			props = append(props, ast.Property{
				Name: name,
				Type: propType,
				Span: loc.NewSpan(propType.Span.Start, nameTok.Span.End),
			})
		}

		closeTok, err := cur.PopExpected(lexer.KindRBrace)
		if err != nil {
			return ast.Properties{}, loc.Location{}, fromCursorErr(err)
		}

		if len(props) == 0 {
			return ast.Properties{Kind: ast.PropsNone}, closeTok.Span.End, nil
		}
		return ast.Properties{Kind: ast.PropsMultiple, Multiple: props}, closeTok.Span.End, nil

	default:
		semi, err := cur.PopExpected(lexer.KindSemicolon)
		if err != nil {
			return ast.Properties{}, loc.Location{}, fromCursorErr(err)
		}
		return ast.Properties{Kind: ast.PropsNone}, semi.Span.End, nil
	}
}
