// Package emit defines the pluggable emitter contract: given the IR
// lowerer's sorted struct and expression lists, produce target-language
// source artifacts. Dispatch owns the stable sort-by-id contract every
// emitter can rely on, grounded on the reference compiler's
// Compiler::compile default trait method rather than on the IR builder
// itself.
package emit

import (
	"sort"

	"github.com/ecsdsl/compiler/internal/ir"
)

// Target names a generated-language output.
type Target string

const (
	TargetC      Target = "c"
	TargetCPP    Target = "cpp"
	TargetCSharp Target = "csharp"
	TargetJS     Target = "js"
)

// Artifact is one generated output file.
type Artifact struct {
	Target       Target
	RelativePath string
	Contents     string
}

// Emitter turns a lowered, id-sorted IR module into target-language
// artifacts.
type Emitter interface {
	Target() Target
	Emit(structs []*ir.Struct, expressions []*ir.Expression) []Artifact
}

// Dispatch stable-sorts the module's structs and expressions by id, then
// runs every emitter over the shared sorted view, concatenating their
// artifacts in emitter order.
func Dispatch(emitters []Emitter, m *ir.Module) []Artifact {
	structs := append([]*ir.Struct(nil), m.Structs...)
	sort.SliceStable(structs, func(i, j int) bool { return structs[i].ID < structs[j].ID })

	expressions := append([]*ir.Expression(nil), m.Expressions...)
	sort.SliceStable(expressions, func(i, j int) bool { return expressions[i].ID < expressions[j].ID })

	var artifacts []Artifact
	for _, e := range emitters {
		artifacts = append(artifacts, e.Emit(structs, expressions)...)
	}
	return artifacts
}
