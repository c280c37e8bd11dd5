// Package cpp emits a partial C++ struct definition header. The original
// reference compiler's cpp_compiler was stubbed out in compiler/mod.rs;
// this port keeps that scope, producing struct layouts only and no
// expression bodies.
package cpp

import (
	"fmt"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/emit"
	"github.com/ecsdsl/compiler/internal/ir"
)

type Emitter struct {
	RelativePath string
}

func (Emitter) Target() emit.Target { return emit.TargetCPP }

func (e Emitter) Emit(structs []*ir.Struct, expressions []*ir.Expression) []emit.Artifact {
	path := e.RelativePath
	if path == "" {
		path = "ecs.gen.hpp"
	}

	b := emit.NewBuilder("C++", "    ", "//")
	b.PushLine("#pragma once")
	b.PushLine("#include <cstdint>")
	b.PushLine("#include <array>")
	b.AddLine()

	b.AddSection("Structs")
	for _, s := range structs {
		b.PushLine(fmt.Sprintf("struct %s {", s.ID))
		b.Indent()
		for _, f := range s.Fields {
			b.PushLine(fieldDecl(f))
		}
		b.Unindent()
		b.PushLine("};")
		b.AddLine()
	}

	if len(expressions) > 0 {
		b.AddComment("NotImplemented: expression lowering has no C++ emitter")
	}

	return []emit.Artifact{{Target: emit.TargetCPP, RelativePath: path, Contents: b.String()}}
}

func fieldDecl(f ir.Field) string {
	base, isPointer := cppType(f.Type.Elem)
	if f.Type.Kind == ast.List {
		if isPointer {
			return fmt.Sprintf("std::array<%s*, %d> %s;", base, f.Type.MaxSize, f.ID)
		}
		return fmt.Sprintf("std::array<%s, %d> %s;", base, f.Type.MaxSize, f.ID)
	}
	if isPointer {
		return fmt.Sprintf("%s* %s;", base, f.ID)
	}
	return fmt.Sprintf("%s %s;", base, f.ID)
}

func cppType(p ast.Primitive) (string, bool) {
	if p.IsIdentifier() {
		return "struct " + p.Name, true
	}
	switch p.Kind {
	case ast.U32:
		return "uint32_t", false
	case ast.U64:
		return "uint64_t", false
	case ast.I32:
		return "int32_t", false
	case ast.I64:
		return "int64_t", false
	case ast.F32:
		return "float", false
	case ast.F64:
		return "double", false
	case ast.Bool:
		return "bool", false
	case ast.Char:
		return "char", false
	default:
		return "void", false
	}
}
