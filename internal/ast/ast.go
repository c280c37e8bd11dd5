// Package ast defines the syntax tree produced by the parser: component
// declarations, struct declarations, and top-level comments.
package ast

import "github.com/ecsdsl/compiler/internal/loc"

// Decl is the closed sum of top-level declarations a file can contain.
// The unexported method keeps the set closed to this package.
type Decl interface {
	Span() loc.Span
	declNode()
}

// PrimitiveKind enumerates the language's scalar types plus the
// identifier-reference case, which names a struct declared anywhere in
// the file (or, inside a synthesized component store, a component).
type PrimitiveKind int

const (
	U32 PrimitiveKind = iota
	U64
	I32
	I64
	F32
	F64
	Bool
	Char
	Identifier
)

func (k PrimitiveKind) String() string {
	switch k {
	case U32:
		return "u32"
	case U64:
		return "u64"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Identifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Primitive is a scalar type reference: one of the builtin kinds, or an
// identifier naming a user struct.
type Primitive struct {
	Kind PrimitiveKind
	// Name holds the referenced identifier when Kind == Identifier.
	Name string
	Span loc.Span
}

// IsIdentifier reports whether p names a struct rather than a builtin.
func (p Primitive) IsIdentifier() bool { return p.Kind == Identifier }

// ListKind distinguishes a bare value from a fixed-capacity array.
type ListKind int

const (
	Single ListKind = iota
	List
)

// Listable wraps a Primitive as either a single value or a fixed-size
// array (capacity MaxSize, always > 0 when Kind == List).
type Listable struct {
	Kind    ListKind
	Elem    Primitive
	MaxSize int
	Span    loc.Span
}

// PropertiesKind distinguishes a tag (no properties), a single anonymous
// value, or a named multi-field property list.
type PropertiesKind int

const (
	PropsNone PropertiesKind = iota
	PropsValue
	PropsMultiple
)

// Property is one named field of a Multiple-shaped properties block.
type Property struct {
	Name string
	Type Listable
	Span loc.Span
}

// Properties is the tagged shape shared by component and struct bodies:
// none (a tag), a single unnamed value, or named multiple fields.
type Properties struct {
	Kind     PropertiesKind
	Value    Listable
	Multiple []Property
}

// ComponentVariety distinguishes a regular (per-entity) component from a
// single-instance (world-global) one.
type ComponentVariety int

const (
	VarietyComponent ComponentVariety = iota
	VarietySingleComponent
)

// ComponentDecl is a top-level "component"/"single_component" declaration.
type ComponentDecl struct {
	ID         string
	Variety    ComponentVariety
	Properties Properties
	SpanValue  loc.Span
}

func (d *ComponentDecl) Span() loc.Span { return d.SpanValue }
func (d *ComponentDecl) declNode()      {}

// StructDecl is a top-level "struct" declaration.
type StructDecl struct {
	ID         string
	Properties Properties
	SpanValue  loc.Span
}

func (d *StructDecl) Span() loc.Span { return d.SpanValue }
func (d *StructDecl) declNode()      {}

// CommentDecl is a top-level comment, preserved as a declaration so the
// parser's output is complete. The unchecked environment partition drops
// it, so the semantic builder never sees it (see SPEC_FULL.md's
// resolution of the comment-association open question).
type CommentDecl struct {
	Lines     []string
	SpanValue loc.Span
}

func (d *CommentDecl) Span() loc.Span { return d.SpanValue }
func (d *CommentDecl) declNode()      {}

// File is the full sequence of declarations parsed from one source unit,
// in source order.
type File []Decl
