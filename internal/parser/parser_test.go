package parser_test

import (
	"testing"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/loc"
	"github.com/ecsdsl/compiler/internal/parser"
)

func parse(t *testing.T, src string) ast.File {
	t.Helper()
	file, err := parser.Parse(src, loc.NewText(0, 0))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return file
}

func TestParsesTagComponent(t *testing.T) {
	file := parse(t, "component IsAlive;")
	if len(file) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(file))
	}
	c, ok := file[0].(*ast.ComponentDecl)
	if !ok {
		t.Fatalf("expected *ast.ComponentDecl, got %T", file[0])
	}
	if c.ID != "IsAlive" || c.Variety != ast.VarietyComponent || c.Properties.Kind != ast.PropsNone {
		t.Fatalf("unexpected component: %+v", c)
	}
}

func TestParsesSingleComponentKeyword(t *testing.T) {
	file := parse(t, "single_component Clock;")
	c := file[0].(*ast.ComponentDecl)
	if c.Variety != ast.VarietySingleComponent {
		t.Fatalf("expected single_component variety, got %v", c.Variety)
	}
}

func TestUnknownComponentKeywordIsFatal(t *testing.T) {
	_, err := parser.Parse("not_component IsAlive;", loc.NewText(0, 0))
	if err == nil {
		t.Fatal("expected error for unrecognized top-level identifier")
	}
}

func TestParsesValueComponent(t *testing.T) {
	file := parse(t, "component Hp(i32);")
	c := file[0].(*ast.ComponentDecl)
	if c.Properties.Kind != ast.PropsValue || c.Properties.Value.Elem.Kind != ast.I32 {
		t.Fatalf("unexpected properties: %+v", c.Properties)
	}
}

func TestParsesListValueComponent(t *testing.T) {
	file := parse(t, "component Hp([i32 100]);")
	c := file[0].(*ast.ComponentDecl)
	if c.Properties.Value.Kind != ast.List || c.Properties.Value.MaxSize != 100 {
		t.Fatalf("expected a 100-element list, got %+v", c.Properties.Value)
	}
}

func TestListSizeZeroIsFatal(t *testing.T) {
	_, err := parser.Parse("component Hp([i32 0]);", loc.NewText(0, 0))
	if err == nil {
		t.Fatal("expected list-size-zero error")
	}
}

func TestParsesMultiPropertyStruct(t *testing.T) {
	file := parse(t, "struct Vec2 { f32 x f32 y }")
	s := file[0].(*ast.StructDecl)
	if s.Properties.Kind != ast.PropsMultiple || len(s.Properties.Multiple) != 2 {
		t.Fatalf("expected two properties, got %+v", s.Properties)
	}
	if s.Properties.Multiple[0].Name != "x" || s.Properties.Multiple[1].Name != "y" {
		t.Fatalf("unexpected property names: %+v", s.Properties.Multiple)
	}
}

func TestEmptyBracesProducesTagProperties(t *testing.T) {
	file := parse(t, "component Hp{}")
	c := file[0].(*ast.ComponentDecl)
	if c.Properties.Kind != ast.PropsNone {
		t.Fatalf("expected empty braces to mean PropsNone, got %v", c.Properties.Kind)
	}
}

func TestMissingSemicolonIsFatal(t *testing.T) {
	_, err := parser.Parse("component IsAlive", loc.NewText(0, 0))
	if err == nil {
		t.Fatal("expected missing-semicolon error")
	}
}

func TestParsesTopLevelComment(t *testing.T) {
	file := parse(t, "# hello\ncomponent IsAlive;")
	if len(file) != 2 {
		t.Fatalf("expected comment + component, got %d decls", len(file))
	}
	if _, ok := file[0].(*ast.CommentDecl); !ok {
		t.Fatalf("expected first decl to be a comment, got %T", file[0])
	}
}

func TestIdentifierPropertyTypeReferencesStruct(t *testing.T) {
	file := parse(t, "component Vel(Vec2);")
	c := file[0].(*ast.ComponentDecl)
	if !c.Properties.Value.Elem.IsIdentifier() || c.Properties.Value.Elem.Name != "Vec2" {
		t.Fatalf("expected identifier reference to Vec2, got %+v", c.Properties.Value.Elem)
	}
}
