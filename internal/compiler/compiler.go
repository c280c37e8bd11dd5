// Package compiler chains the lexer, parser, unchecked environment,
// semantic builder, and IR lowerer into a single entry point, then
// dispatches the requested emitters over the result. Callers receive
// either a successful artifact list or a sorted, deduplicated diagnostic
// list; no partial output is produced when errors exist.
package compiler

import (
	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/emit"
	"github.com/ecsdsl/compiler/internal/env"
	"github.com/ecsdsl/compiler/internal/ir"
	"github.com/ecsdsl/compiler/internal/loc"
	"github.com/ecsdsl/compiler/internal/parser"
	"github.com/ecsdsl/compiler/internal/sema"
)

// Result is the successful outcome of compiling one source unit: the
// lowered module plus whichever artifacts the requested emitters
// produced from it.
type Result struct {
	Module    *ir.Module
	Artifacts []emit.Artifact
}

// Compile runs the full front end over source, starting location
// tracking at start, then dispatches emitters over the lowered module.
// On any lexical, syntactic, or semantic error it returns a sorted,
// deduplicated diagnostic list and a zero Result.
func Compile(source string, start loc.Location, emitters []emit.Emitter) (Result, []diag.Diagnostic) {
	file, perr := parser.Parse(source, start)
	if perr != nil {
		return Result{}, diag.SortAndDedup([]diag.Diagnostic{perr.ToDiagnostic()})
	}

	semaEnv, errs := sema.Build(env.Build(file))
	if len(errs) != 0 {
		return Result{}, errs
	}

	module := ir.Build(semaEnv)
	artifacts := emit.Dispatch(emitters, module)

	return Result{Module: module, Artifacts: artifacts}, nil
}
