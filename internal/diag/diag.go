// Package diag defines the shared diagnostic shape surfaced by the
// lexer, parser, and semantic builder: a message plus a source location,
// with enough structure (stage, severity, code) for tooling to key off.
package diag

import (
	"sort"

	"github.com/ecsdsl/compiler/internal/loc"
)

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer    Stage = "lexer"
	StageParser   Stage = "parser"
	StageSema     Stage = "sema"
)

// Severity captures how impactful the diagnostic is. The core only ever
// produces errors; Warning/Note exist for symmetry with the formatter and
// for future diagnostics (e.g. unused struct warnings).
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic, independent of its
// (possibly parameterized) message text.
type Code string

const (
	CodeLexUnterminatedString Code = "LEX_UNTERMINATED_STRING"
	CodeLexStringInIdentifier Code = "LEX_STRING_IN_IDENTIFIER"
	CodeLexCommentInString    Code = "LEX_COMMENT_IN_STRING"
	CodeLexMultiplePeriods    Code = "LEX_MULTIPLE_PERIODS_IN_NUMBER"

	CodeParseUnexpectedToken      Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseUnexpectedIdentifier Code = "PARSE_UNEXPECTED_IDENTIFIER"
	CodeParseExpectedToken        Code = "PARSE_EXPECTED_TOKEN"
	CodeParseListSize             Code = "PARSE_LIST_SIZE"

	CodeSemaDuplicateComponent  Code = "SEMA_DUPLICATE_COMPONENT"
	CodeSemaDuplicateStruct     Code = "SEMA_DUPLICATE_STRUCT"
	CodeSemaReservedID          Code = "SEMA_RESERVED_ID"
	CodeSemaReservedProperty    Code = "SEMA_RESERVED_PROPERTY"
	CodeSemaDuplicateProperty   Code = "SEMA_DUPLICATE_PROPERTY"
	CodeSemaUndefinedReference  Code = "SEMA_UNDEFINED_REFERENCE"
	CodeSemaNativeCollision     Code = "SEMA_NATIVE_COLLISION"
)

// Diagnostic is a compiler diagnostic surfaced to end users and tooling.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     loc.Span
}

// New builds an error-severity diagnostic.
func New(stage Stage, code Code, message string, span loc.Span) Diagnostic {
	return Diagnostic{Stage: stage, Severity: SeverityError, Code: code, Message: message, Span: span}
}

// SortAndDedup stable-sorts diagnostics by (line, column) of their span's
// start location and removes exact duplicates, matching the semantic
// builder's error finalization rule in spec.md §4.F.
func SortAndDedup(diags []Diagnostic) []Diagnostic {
	sort.SliceStable(diags, func(i, j int) bool {
		return loc.Less(diags[i].Span.Start, diags[j].Span.Start)
	})

	out := diags[:0:0]
	seen := make(map[Diagnostic]bool, len(diags))
	for _, d := range diags {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
