// Package c emits C struct and forward-declaration output for a lowered
// IR module, grounded on the reference compiler's c_compiler.rs and the
// shared output_builder.rs conventions.
package c

import (
	"fmt"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/emit"
	"github.com/ecsdsl/compiler/internal/ir"
)

// Emitter produces a single C header artifact from a lowered module.
type Emitter struct {
	// RelativePath names the generated header; defaults to "ecs.gen.h"
	// when empty.
	RelativePath string
}

func (Emitter) Target() emit.Target { return emit.TargetC }

func (e Emitter) Emit(structs []*ir.Struct, expressions []*ir.Expression) []emit.Artifact {
	path := e.RelativePath
	if path == "" {
		path = "ecs.gen.h"
	}

	b := emit.NewBuilder("C", "    ", "//")

	b.AddSection("Includes")
	b.PushLine("#include <stdint.h>")
	b.PushLine("#include <stdbool.h>")
	b.PushLine("#include <stdio.h>")
	b.AddLine()

	b.AddSection("Forward Declarations")
	for _, s := range structs {
		b.PushLine(fmt.Sprintf("typedef struct %s %s;", s.ID, s.ID))
	}
	b.AddLine()

	b.AddSection("Structs")
	for _, s := range structs {
		emitStruct(b, s)
	}

	return []emit.Artifact{{
		Target:       emit.TargetC,
		RelativePath: path,
		Contents:     b.String(),
	}}
}

func emitStruct(b *emit.Builder, s *ir.Struct) {
	b.AddComments(s.Comments)
	b.PushLine(fmt.Sprintf("struct %s {", s.ID))
	b.Indent()
	for _, f := range s.Fields {
		b.PushLine(fieldDecl(f))
	}
	b.Unindent()
	b.PushLine(fmt.Sprintf("}; // %s", s.ID))
	b.AddLine()
}

// fieldDecl renders one struct member. Per this compiler's spec, a list
// field produces a pointer-element array only when its element is an
// identifier (struct) reference; a list of primitives stays a plain
// fixed-size array of values.
func fieldDecl(f ir.Field) string {
	baseType, isPointerElem := cType(f.Type.Elem)

	switch f.Type.Kind {
	case ast.List:
		if isPointerElem {
			return fmt.Sprintf("%s* %s[%d];", baseType, f.ID, f.Type.MaxSize)
		}
		return fmt.Sprintf("%s %s[%d];", baseType, f.ID, f.Type.MaxSize)
	default: // ast.Single
		if isPointerElem {
			return fmt.Sprintf("%s* %s;", baseType, f.ID)
		}
		return fmt.Sprintf("%s %s;", baseType, f.ID)
	}
}

// cType maps a primitive to its C spelling. The second return reports
// whether the type is an identifier reference, which renders as a
// pointer to an opaque struct everywhere it appears.
func cType(p ast.Primitive) (string, bool) {
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
