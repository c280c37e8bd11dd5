// Package parser implements the recursive-descent parser that turns a
// lexer token stream into an ast.File. Each nonterminal gets its own
// file, mirroring the teacher's practice of grouping a parser by
// syntactic concept rather than by a single monolithic recursive method.
package parser

import (
	"fmt"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/lexer"
	"github.com/ecsdsl/compiler/internal/loc"
)

// Error is a fatal parse failure. Like the lexer, the parser is
// fail-fast: malformed syntax aborts the whole parse immediately rather
// than accumulating errors (error accumulation is reserved for the
// semantic builder, whose errors are about meaning, not shape).
type Error struct {
	Code    diag.Code
	Message string
	Span    loc.Span
	// lexical marks an error passed through from the lexer, so its
	// diagnostic keeps the lexer stage.
	lexical bool
}

func (e *Error) Error() string { return e.Message }

func (e *Error) ToDiagnostic() diag.Diagnostic {
	stage := diag.StageParser
	if e.lexical {
		stage = diag.StageLexer
	}
	return diag.New(stage, e.Code, e.Message, e.Span)
}

func fromLexError(e *lexer.Error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Span: e.Span, lexical: true}
}

func errAt(code diag.Code, at loc.Location, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Span: loc.NewSpan(at, at)}
}

// Parse lexes and parses a complete source unit into an ast.File.
func Parse(source string, start loc.Location) (ast.File, *Error) {
	toks, lexErr := lexer.Lex(source, start)
	if lexErr != nil {
		return nil, fromLexError(lexErr)
	}

	cur := lexer.NewCursor(toks, start)

	var file ast.File
	for {
		tok, ok := cur.Pop()
		if !ok {
			break
		}

		switch tok.Kind {
		case lexer.KindIdent:
			switch tok.Text {
			case ast.ComponentKeyword, ast.SingleComponentKeyword:
				cur.InsertHead(tok)
				decl, err := parseComponent(cur)
				if err != nil {
					return nil, err
				}
				file = append(file, decl)
			case ast.StructKeyword:
				cur.InsertHead(tok)
				decl, err := parseStruct(cur)
				if err != nil {
					return nil, err
				}
				file = append(file, decl)
			default:
				return nil, errAt(diag.CodeParseUnexpectedIdentifier, tok.Span.Start, "Unexpected identifier %q", tok.Text)
			}
		case lexer.KindComment:
			file = append(file, &ast.CommentDecl{Lines: tok.Lines, SpanValue: tok.Span})
		default:
			return nil, errAt(diag.CodeParseUnexpectedToken, tok.Span.Start, "Unexpected token %s", tok.DisplayName())
		}
	}

	return file, nil
}
