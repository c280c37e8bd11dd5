// Package ir lowers the semantic environment into a flat intermediate
// representation: one Struct per component and per struct-value, with
// identifier-typed fields rewritten to the mangled D_STRUCT_/D_COMPONENT_
// names emitters key off. Expression is a reserved, always-empty IR
// variant kept for future language extension (see SPEC_FULL.md's
// resolution of the expression-IR open question) — nothing in this
// front end ever produces one yet.
package ir

import (
	"sort"
	"strings"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/sema"
)

// Field is one member of a lowered Struct.
type Field struct {
	ID   string
	Type ast.Listable
}

// Struct is a lowered component or struct-value, with a mangled id and
// fields whose identifier references have already been mangled too.
type Struct struct {
	ID       string
	Fields   []Field
	Comments []string
}

// Expression is reserved for a future statement/call IR; the builder
// never constructs one.
type Expression struct {
	ID       string
	Comments []string
}

// Module is the complete lowered program: every component and
// struct-value as a flat Struct list, plus the (always empty) Expression
// list. Neither list is sorted here — the emitter dispatch layer applies
// the stable sort-by-id contract immediately before invoking an emitter.
type Module struct {
	Structs     []*Struct
	Expressions []*Expression
}

// ComponentMangledID is the D_COMPONENT_<UPPER> name a component id
// lowers to.
func ComponentMangledID(id string) string { return "D_COMPONENT_" + strings.ToUpper(id) }

// StructMangledID is the D_STRUCT_<UPPER> name a struct-value id lowers
// to.
func StructMangledID(id string) string { return "D_STRUCT_" + strings.ToUpper(id) }

// Build lowers a validated semantic environment into a Module.
func Build(e *sema.Env) *Module {
	m := &Module{}

	for _, id := range sortedKeys(e.Components) {
		c := e.Components[id]
		m.Structs = append(m.Structs, &Struct{
			ID:     ComponentMangledID(id),
			Fields: buildFields(c.Properties, false),
		})
	}

	for _, id := range sortedKeys(e.Structs) {
		sv := e.Structs[id]
		useComponents := sv.Kind == sema.ComponentStore
		m.Structs = append(m.Structs, &Struct{
			ID:     StructMangledID(id),
			Fields: buildFields(sv.Decl.Properties, useComponents),
		})
	}

	return m
}

func buildFields(props ast.Properties, useComponents bool) []Field {
	switch props.Kind {
	case ast.PropsValue:
		return []Field{{ID: "value", Type: rewriteListable(props.Value, useComponents)}}
	case ast.PropsMultiple:
		fields := make([]Field, 0, len(props.Multiple))
		for _, p := range props.Multiple {
			fields = append(fields, Field{ID: p.Name, Type: rewriteListable(p.Type, useComponents)})
		}
		return fields
	default: // ast.PropsNone
		return nil
	}
}

func rewriteListable(l ast.Listable, useComponents bool) ast.Listable {
	l.Elem = rewritePrimitive(l.Elem, useComponents)
	return l
}

// rewritePrimitive mangles an identifier-typed field's referenced name.
// Which mangling applies is a property of the owning struct (whether it
// is a synthesized component store), not of the referenced identifier's
// own kind — the semantic builder has already guaranteed a
// ComponentStore's identifier fields name components and every other
// owner's identifier fields name structs.
func rewritePrimitive(p ast.Primitive, useComponents bool) ast.Primitive {
	if !p.IsIdentifier() {
		return p
	}
	if useComponents {
		p.Name = ComponentMangledID(p.Name)
	} else {
		p.Name = StructMangledID(p.Name)
	}
	return p
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
