package compiler_test

import (
	"strings"
	"testing"

	"github.com/ecsdsl/compiler/internal/compiler"
	"github.com/ecsdsl/compiler/internal/emit"
	"github.com/ecsdsl/compiler/internal/emit/c"
	"github.com/ecsdsl/compiler/internal/loc"
)

const sampleProgram = `
struct Vec2 {
	f32 x
	f32 y
}

component Position(Vec2);
component Hp(i32);
single_component GameState {
	u32 tick
	bool paused
}
`

func TestCompileSampleProgramSucceeds(t *testing.T) {
	res, errs := compiler.Compile(sampleProgram, loc.NewText(0, 0), []emit.Emitter{c.Emitter{}})
	if errs != nil {
		t.Fatalf("unexpected diagnostics: %+v", errs)
	}
	if res.Module == nil {
		t.Fatal("expected a lowered module")
	}
	if len(res.Artifacts) != 1 {
		t.Fatalf("expected one C artifact, got %d", len(res.Artifacts))
	}
	if !strings.Contains(res.Artifacts[0].Contents, "D_COMPONENT_POSITION") {
		t.Fatalf("expected lowered component in output:\n%s", res.Artifacts[0].Contents)
	}
}

func TestCompileReturnsSortedDiagnosticsOnLexError(t *testing.T) {
	_, errs := compiler.Compile(`component Bad("unterminated);`, loc.NewText(0, 0), nil)
	if len(errs) == 0 {
		t.Fatal("expected a lexical diagnostic")
	}
}

func TestCompileReturnsDiagnosticsOnParseError(t *testing.T) {
	_, errs := compiler.Compile(`frobnicate Thing;`, loc.NewText(0, 0), nil)
	if len(errs) == 0 {
		t.Fatal("expected a parse diagnostic")
	}
}

func TestCompileReturnsDiagnosticsOnSemaError(t *testing.T) {
	_, errs := compiler.Compile("component Hp(i32);\ncomponent Hp(i32);", loc.NewText(0, 0), nil)
	if len(errs) != 2 {
		t.Fatalf("expected 2 sema diagnostics, got %d: %+v", len(errs), errs)
	}
}

func TestCompileNoPartialOutputOnError(t *testing.T) {
	res, errs := compiler.Compile("component Bad;\ncomponent Bad;", loc.NewText(0, 0), []emit.Emitter{c.Emitter{}})
	if errs == nil {
		t.Fatal("expected diagnostics")
	}
	if res.Module != nil || res.Artifacts != nil {
		t.Fatalf("expected zero-value result on error, got %+v", res)
	}
}
