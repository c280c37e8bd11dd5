// Command ecsdslc reads a single ECS schema source file, compiles it, and
// writes the requested target-language artifacts to an output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecsdsl/compiler/internal/compiler"
	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/emit"
	"github.com/ecsdsl/compiler/internal/emit/c"
	"github.com/ecsdsl/compiler/internal/emit/cpp"
	"github.com/ecsdsl/compiler/internal/emit/csharp"
	"github.com/ecsdsl/compiler/internal/emit/js"
	"github.com/ecsdsl/compiler/internal/loc"
)

var logger = log.New(os.Stderr, "ecsdslc: ", 0)

func main() {
	outDir := flag.String("o", ".", "output directory for generated artifacts")
	targets := flag.String("target", "c", "comma-separated target list: c,cpp,csharp,js")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ecsdslc [flags] <source-file>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	emitters, err := selectEmitters(*targets)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		logger.Fatalf("reading %s: %v", inputPath, err)
	}

	start := loc.NewFile(inputPath, 0, 0)
	result, diags := compiler.Compile(string(src), start, emitters)
	if diags != nil {
		reportAndExit(diags)
	}

	if err := writeArtifacts(*outDir, result.Artifacts); err != nil {
		logger.Fatalf("writing artifacts: %v", err)
	}

	logger.Printf("wrote %d artifact(s) to %s", len(result.Artifacts), *outDir)
}

func selectEmitters(targetList string) ([]emit.Emitter, error) {
	var emitters []emit.Emitter
	for _, name := range strings.Split(targetList, ",") {
		switch strings.TrimSpace(name) {
		case "c":
			emitters = append(emitters, c.Emitter{})
		case "cpp":
			emitters = append(emitters, cpp.Emitter{})
		case "csharp":
			emitters = append(emitters, csharp.Emitter{})
		case "js":
			emitters = append(emitters, js.Emitter{})
		case "":
			continue
		default:
			return nil, fmt.Errorf("unknown target %q", name)
		}
	}
	return emitters, nil
}

func reportAndExit(diags []diag.Diagnostic) {
	formatter := diag.NewFormatter()
	formatter.FormatAll(diags)
	os.Exit(1)
}

func writeArtifacts(outDir string, artifacts []emit.Artifact) error {
	for _, a := range artifacts {
		dest := filepath.Join(outDir, string(a.Target), a.RelativePath)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, []byte(a.Contents), 0o644); err != nil {
			return err
		}
	}
	return nil
}
