package ir_test

import (
	"testing"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/env"
	"github.com/ecsdsl/compiler/internal/ir"
	"github.com/ecsdsl/compiler/internal/loc"
	"github.com/ecsdsl/compiler/internal/parser"
	"github.com/ecsdsl/compiler/internal/sema"
)

func lower(t *testing.T, src string) *ir.Module {
	t.Helper()
	file, perr := parser.Parse(src, loc.NewText(0, 0))
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	e, errs := sema.Build(env.Build(file))
	if len(errs) != 0 {
		t.Fatalf("sema errors: %+v", errs)
	}
	return ir.Build(e)
}

func findStruct(m *ir.Module, id string) *ir.Struct {
	for _, s := range m.Structs {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func TestComponentLowersToMangledStruct(t *testing.T) {
	m := lower(t, "component Hp(i32);")
	s := findStruct(m, "D_COMPONENT_HP")
	if s == nil {
		t.Fatal("expected D_COMPONENT_HP struct")
	}
	if len(s.Fields) != 1 || s.Fields[0].ID != "value" || s.Fields[0].Type.Elem.Kind != ast.I32 {
		t.Fatalf("unexpected fields: %+v", s.Fields)
	}
}

func TestComponentStoreFieldsMangleAsComponent(t *testing.T) {
	m := lower(t, "component Hp(i32);")
	store := findStruct(m, "D_STRUCT_HP_STORE")
	if store == nil {
		t.Fatal("expected D_STRUCT_HP_STORE struct")
	}
	var componentsField *ir.Field
	for i := range store.Fields {
		if store.Fields[i].ID == "components" {
			componentsField = &store.Fields[i]
		}
	}
	if componentsField == nil {
		t.Fatal("expected a 'components' field on the store")
	}
	if componentsField.Type.Elem.Name != "D_COMPONENT_HP" {
		t.Fatalf("expected components field to reference D_COMPONENT_HP, got %q", componentsField.Type.Elem.Name)
	}
}

func TestUserStructIdentifierFieldManglesAsStruct(t *testing.T) {
	m := lower(t, "struct Vec2 { f32 x f32 y }\nstruct Transform { Vec2 pos }")
	transform := findStruct(m, "D_STRUCT_TRANSFORM")
	if transform == nil {
		t.Fatal("expected D_STRUCT_TRANSFORM struct")
	}
	if transform.Fields[0].Type.Elem.Name != "D_STRUCT_VEC2" {
		t.Fatalf("expected reference to D_STRUCT_VEC2, got %q", transform.Fields[0].Type.Elem.Name)
	}
}

func TestEntityLowersAsU64ValueStruct(t *testing.T) {
	m := lower(t, "component Hp(i32);")
	entity := findStruct(m, "D_STRUCT_ENTITY")
	if entity == nil {
		t.Fatal("expected D_STRUCT_ENTITY struct")
	}
	if len(entity.Fields) != 1 || entity.Fields[0].Type.Elem.Kind != ast.U64 {
		t.Fatalf("expected single u64 value field, got %+v", entity.Fields)
	}
}
