// Package csharp emits a partial C# struct definition file. The original
// reference compiler's csharp_compiler was stubbed out in
// compiler/mod.rs; this port keeps that scope, producing struct layouts
// only and no expression bodies.
package csharp

import (
	"fmt"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/emit"
	"github.com/ecsdsl/compiler/internal/ir"
)

type Emitter struct {
	RelativePath string
}

func (Emitter) Target() emit.Target { return emit.TargetCSharp }

func (e Emitter) Emit(structs []*ir.Struct, expressions []*ir.Expression) []emit.Artifact {
	path := e.RelativePath
	if path == "" {
		path = "Ecs.gen.cs"
	}

	b := emit.NewBuilder("C#", "    ", "//")
	b.PushLine("using System;")
	b.AddLine()

	b.AddSection("Structs")
	for _, s := range structs {
		b.PushLine(fmt.Sprintf("public struct %s {", s.ID))
		b.Indent()
		for _, f := range s.Fields {
			b.PushLine(fieldDecl(f))
		}
		b.Unindent()
		b.PushLine("}")
		b.AddLine()
	}

	if len(expressions) > 0 {
		b.AddComment("NotImplemented: expression lowering has no C# emitter")
	}

	return []emit.Artifact{{Target: emit.TargetCSharp, RelativePath: path, Contents: b.String()}}
}

func fieldDecl(f ir.Field) string {
	base := csType(f.Type.Elem)
	if f.Type.Kind == ast.List {
		return fmt.Sprintf("public %s[] %s; // fixed size %d", base, f.ID, f.Type.MaxSize)
	}
	return fmt.Sprintf("public %s %s;", base, f.ID)
}

func csType(p ast.Primitive) string {
	if p.IsIdentifier() {
		return p.Name
	}
	switch p.Kind {
	case ast.U32:
		return "uint"
	case ast.U64:
		return "ulong"
	case ast.I32:
		return "int"
	case ast.I64:
		return "long"
	case ast.F32:
		return "float"
	case ast.F64:
		return "double"
	case ast.Bool:
		return "bool"
	case ast.Char:
		return "char"
	default:
		return "object"
	}
}
