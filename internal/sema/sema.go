// Package sema builds the semantic environment from the unchecked
// environment: duplicate/reserved-word checks, native struct synthesis
// (Entity, <Component>_Store), and reference validation. It is the one
// stage that accumulates errors instead of failing fast, since most of
// these checks are independent of one another and a user benefits from
// seeing all of them at once.
package sema

import (
	"fmt"
	"sort"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/env"
	"github.com/ecsdsl/compiler/internal/loc"
)

// ValueKind distinguishes a user-authored struct from one synthesized to
// back a component's storage.
type ValueKind int

const (
	UserStruct ValueKind = iota
	ComponentStore
)

// StructValue is a struct-value-by-id map entry: either a user struct or
// a synthesized per-component storage struct.
type StructValue struct {
	Kind ValueKind
	Decl *ast.StructDecl
}

// Env is the semantic environment: components and struct-values, each
// keyed by id, validated and closed under native synthesis.
type Env struct {
	Components map[string]*ast.ComponentDecl
	Structs    map[string]*StructValue
}

func spanAt(l loc.Location) loc.Span { return loc.NewSpan(l, l) }

func errf(code diag.Code, at loc.Location, format string, args ...interface{}) diag.Diagnostic {
	return diag.New(diag.StageSema, code, fmt.Sprintf(format, args...), spanAt(at))
}

// Build assembles the semantic environment from unchecked. On any error
// it returns a sorted, deduplicated diagnostic list and a nil Env: phase
// 1 (declaration assembly) short-circuits on its own errors since further
// checks are meaningless without a clean declaration set, matching the
// reference implementation's early return.
func Build(u env.Unchecked) (*Env, []diag.Diagnostic) {
	e := &Env{Components: make(map[string]*ast.ComponentDecl), Structs: make(map[string]*StructValue)}
	var errs []diag.Diagnostic

	for _, c := range u.Components {
		if existing, ok := e.Components[c.ID]; ok {
			errs = append(errs,
				errf(diag.CodeSemaDuplicateComponent, c.SpanValue.Start, "Multiple component definitions for '%s'", c.ID),
				errf(diag.CodeSemaDuplicateComponent, existing.SpanValue.Start, "Multiple component definitions for '%s'", c.ID),
			)
		} else if ast.IsReservedWord(c.ID) {
			errs = append(errs, errf(diag.CodeSemaReservedID, c.SpanValue.Start, "Component id '%s' is a reserved word", c.ID))
		} else {
			e.Components[c.ID] = c
		}
	}

	for _, s := range u.Structs {
		if existing, ok := e.Structs[s.ID]; ok {
			errs = append(errs,
				errf(diag.CodeSemaDuplicateStruct, s.SpanValue.Start, "Multiple struct definitions for '%s'", s.ID),
				errf(diag.CodeSemaDuplicateStruct, existing.Decl.SpanValue.Start, "Multiple struct definitions for '%s'", s.ID),
			)
		} else if ast.IsReservedWord(s.ID) {
			errs = append(errs, errf(diag.CodeSemaReservedID, s.SpanValue.Start, "Struct id '%s' is a reserved word", s.ID))
		} else {
			e.Structs[s.ID] = &StructValue{Kind: UserStruct, Decl: s}
		}
	}

	if len(errs) > 0 {
		return nil, diag.SortAndDedup(errs)
	}

	if nativeErrs := buildNativeStructures(e); len(nativeErrs) > 0 {
		return nil, diag.SortAndDedup(nativeErrs)
	}

	errs = append(errs, validateComponents(e)...)
	errs = append(errs, validateStructs(e)...)

	if len(errs) > 0 {
		return nil, diag.SortAndDedup(errs)
	}
	return e, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func singlePrimitive(kind ast.PrimitiveKind, name string) ast.Listable {
	return ast.Listable{
		Kind: ast.Single,
		Elem: ast.Primitive{Kind: kind, Name: name, Span: loc.SystemSpan()},
		Span: loc.SystemSpan(),
	}
}

// buildNativeStructures synthesizes the Entity struct and, for every
// declared component, a "<Component>_Store" struct holding a count of
// active instances and a reference back to the component. A user struct
// occupying one of these ids is a native-collision error.
func buildNativeStructures(e *Env) []diag.Diagnostic {
	entity := &StructValue{
		Kind: UserStruct,
		Decl: &ast.StructDecl{
			ID:         "Entity",
			Properties: ast.Properties{Kind: ast.PropsValue, Value: singlePrimitive(ast.U64, "")},
			SpanValue:  loc.SystemSpan(),
		},
	}

	candidates := []*StructValue{entity}
	for _, id := range sortedKeys(e.Components) {
		store := &ast.StructDecl{
			ID: id + "_Store",
			Properties: ast.Properties{Kind: ast.PropsMultiple, Multiple: []ast.Property{
				{Name: "active_components", Type: singlePrimitive(ast.U64, ""), Span: loc.SystemSpan()},
				{Name: "components", Type: singlePrimitive(ast.Identifier, id), Span: loc.SystemSpan()},
			}},
			SpanValue: loc.SystemSpan(),
		}
		candidates = append(candidates, &StructValue{Kind: ComponentStore, Decl: store})
	}

	var errs []diag.Diagnostic
	for _, cand := range candidates {
		if existing, ok := e.Structs[cand.Decl.ID]; ok {
			errs = append(errs, errf(diag.CodeSemaNativeCollision, existing.Decl.SpanValue.Start,
				"User implementation found for native struct '%s'", cand.Decl.ID))
			continue
		}
		e.Structs[cand.Decl.ID] = cand
	}
	return errs
}

func validateComponents(e *Env) []diag.Diagnostic {
	var errs []diag.Diagnostic
	for _, id := range sortedKeys(e.Components) {
		c := e.Components[id]
		switch c.Properties.Kind {
		case ast.PropsNone:
		case ast.PropsValue:
			errs = append(errs, checkReference(e.structExists, c.Properties.Value,
				fmt.Sprintf("value component '%s'", id))...)
		case ast.PropsMultiple:
			errs = append(errs, validateProperties(e.structExists, c.Properties.Multiple, "component", id)...)
		}
	}
	return errs
}

func validateStructs(e *Env) []diag.Diagnostic {
	var errs []diag.Diagnostic
	for _, id := range sortedKeys(e.Structs) {
		sv := e.Structs[id]
		checkID := e.structExists
		if sv.Kind == ComponentStore {
			checkID = e.componentExists
		}
		switch sv.Decl.Properties.Kind {
		case ast.PropsNone:
		case ast.PropsValue:
			errs = append(errs, checkReference(checkID, sv.Decl.Properties.Value,
				fmt.Sprintf("value struct '%s'", id))...)
		case ast.PropsMultiple:
			errs = append(errs, validateProperties(checkID, sv.Decl.Properties.Multiple, "struct", id)...)
		}
	}
	return errs
}

func (e *Env) structExists(id string) bool   { _, ok := e.Structs[id]; return ok }
func (e *Env) componentExists(id string) bool { _, ok := e.Components[id]; return ok }

func checkReference(exists func(string) bool, listable ast.Listable, context string) []diag.Diagnostic {
	if !listable.Elem.IsIdentifier() {
		return nil
	}
	if exists(listable.Elem.Name) {
		return nil
	}
	return []diag.Diagnostic{errf(diag.CodeSemaUndefinedReference, listable.Span.Start,
		"Referenced struct type '%s' does not exist for %s", listable.Elem.Name, context)}
}

func validateProperties(exists func(string) bool, props []ast.Property, ownerKind, ownerID string) []diag.Diagnostic {
	var errs []diag.Diagnostic
	for idx, p := range props {
		if ast.IsReservedWord(p.Name) {
			errs = append(errs, errf(diag.CodeSemaReservedProperty, p.Span.Start,
				"Property identifier '%s' is a reserved word for %s '%s'", p.Name, ownerKind, ownerID))
		}

		for idx2, p2 := range props {
			if idx == idx2 {
				continue
			}
			if p.Name == p2.Name {
				errs = append(errs, errf(diag.CodeSemaDuplicateProperty, p.Span.Start,
					"Duplicate property identifier '%s' for %s '%s'", p.Name, ownerKind, ownerID))
			}
		}

		if p.Type.Elem.IsIdentifier() && !exists(p.Type.Elem.Name) {
			errs = append(errs, errf(diag.CodeSemaUndefinedReference, p.Span.Start,
				"Referenced struct type '%s' does not exist for property '%s' for %s '%s'",
				p.Type.Elem.Name, p.Name, ownerKind, ownerID))
		}
	}
	return errs
}
