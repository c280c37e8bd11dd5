// Package env partitions a parsed ast.File into the unchecked environment:
// component declarations and struct declarations, comments dropped.
package env

import "github.com/ecsdsl/compiler/internal/ast"

// Unchecked is a pure partition of a file's declarations by kind, with
// no validation performed yet. Comments are intentionally dropped (see
// SPEC_FULL.md's resolution of the comment-association open question).
type Unchecked struct {
	Components []*ast.ComponentDecl
	Structs    []*ast.StructDecl
}

// Build partitions file into an Unchecked environment.
func Build(file ast.File) Unchecked {
	var env Unchecked
	for _, decl := range file {
		switch d := decl.(type) {
		case *ast.ComponentDecl:
			env.Components = append(env.Components, d)
		case *ast.StructDecl:
			env.Structs = append(env.Structs, d)
		case *ast.CommentDecl:
			// Dropped: comments carry no semantic meaning past this point.
		}
	}
	return env
}
