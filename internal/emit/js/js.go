// Package js emits a partial JavaScript struct-shape description. The
// original reference compiler's js_compiler was stubbed out in
// compiler/mod.rs; this port keeps that scope, producing factory-style
// object shapes only and no expression bodies.
package js

import (
	"fmt"

	"github.com/ecsdsl/compiler/internal/ast"
	"github.com/ecsdsl/compiler/internal/emit"
	"github.com/ecsdsl/compiler/internal/ir"
)

type Emitter struct {
	RelativePath string
}

func (Emitter) Target() emit.Target { return emit.TargetJS }

func (e Emitter) Emit(structs []*ir.Struct, expressions []*ir.Expression) []emit.Artifact {
	path := e.RelativePath
	if path == "" {
		path = "ecs.gen.js"
	}

	b := emit.NewBuilder("JavaScript", "  ", "//")

	b.AddSection("Structs")
	for _, s := range structs {
		b.PushLine(fmt.Sprintf("export function make%s() {", s.ID))
		b.Indent()
		b.PushLine("return {")
		b.Indent()
		for _, f := range s.Fields {
			b.PushLine(fieldInit(f))
		}
		b.Unindent()
		b.PushLine("};")
		b.Unindent()
		b.PushLine("}")
		b.AddLine()
	}

	if len(expressions) > 0 {
		b.AddComment("NotImplemented: expression lowering has no JS emitter")
	}

	return []emit.Artifact{{Target: emit.TargetJS, RelativePath: path, Contents: b.String()}}
}

func fieldInit(f ir.Field) string {
	if f.Type.Kind == ast.List {
		return fmt.Sprintf("%s: new Array(%d).fill(%s),", f.ID, f.Type.MaxSize, zeroValue(f.Type.Elem))
	}
	return fmt.Sprintf("%s: %s,", f.ID, zeroValue(f.Type.Elem))
}

func zeroValue(p ast.Primitive) string {
	if p.IsIdentifier() {
		return "null"
	}
	switch p.Kind {
	case ast.Bool:
		return "false"
	case ast.Char:
		return "''"
	default:
		return "0"
	}
}
