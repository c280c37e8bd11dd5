package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Formatter renders diagnostics in a compact Rust-style form: a header
// line ("error[CODE]: message"), a "--> location" line, and — when the
// original source text is available — the offending source line with a
// caret underline. Grounded on the teacher compiler's diagnostic
// formatter, trimmed to the single-span shape this front end's
// diagnostics carry.
type Formatter struct {
	Out         io.Writer
	sourceCache map[string]string
}

// NewFormatter builds a formatter that writes to stderr.
func NewFormatter() *Formatter {
	return &Formatter{Out: os.Stderr, sourceCache: make(map[string]string)}
}

func (f *Formatter) out() io.Writer {
	if f.Out == nil {
		return os.Stderr
	}
	return f.Out
}

// LoadSource reads and caches a file's contents for snippet rendering.
func (f *Formatter) LoadSource(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if f.sourceCache == nil {
		f.sourceCache = make(map[string]string)
	}
	if src, ok := f.sourceCache[path]; ok {
		return src, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[path] = src
	return src, nil
}

// Format prints a single diagnostic, pulling a source snippet from disk
// when the diagnostic's span points at a file location.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)
	fmt.Fprintf(f.out(), "  --> %s\n", d.Span.Start)

	if d.Span.Start.IsFile() {
		if src, err := f.LoadSource(d.Span.Start.Path()); err == nil && src != "" {
			f.printSnippet(src, d.Span.Start)
			return
		}
	}
}

// FormatText is like Format, but renders a snippet from in-memory source
// text (used for text-variant locations, which have no file to load).
func (f *Formatter) FormatText(d Diagnostic, source string) {
	f.printHeader(d)
	fmt.Fprintf(f.out(), "  --> %s\n", d.Span.Start)
	f.printSnippet(source, d.Span.Start)
}

func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}
	if d.Code != "" {
		fmt.Fprintf(f.out(), "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.out(), "%s: %s\n", severity, d.Message)
	}
}

func (f *Formatter) printSnippet(source string, at interface {
	Line() int
	Column() int
}) {
	lines := strings.Split(source, "\n")
	line := at.Line()
	if line < 0 || line >= len(lines) {
		return
	}

	lineNumWidth := len(fmt.Sprintf("%d", line+1))
	pad := strings.Repeat(" ", lineNumWidth)

	fmt.Fprintf(f.out(), "   %s |\n", pad)
	fmt.Fprintf(f.out(), " %*d | %s\n", lineNumWidth, line+1, lines[line])

	col := at.Column()
	if col < 0 {
		col = 0
	}
	if col > len(lines[line]) {
		col = len(lines[line])
	}
	fmt.Fprintf(f.out(), "   %s | %s^\n", pad, strings.Repeat(" ", col))
}

// FormatAll prints every diagnostic in order, one after another.
func (f *Formatter) FormatAll(diags []Diagnostic) {
	for _, d := range diags {
		f.Format(d)
	}
}
