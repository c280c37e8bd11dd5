package emit

import "strings"

// CompilerName and CompilerVersion stamp the "Output Metadata" banner
// every emitter opens with.
const (
	CompilerName    = "ecsdslc"
	CompilerVersion = "0.1.0"
)

// Builder is a small indentation-aware text accumulator shared by every
// emitter, grounded on the reference compiler's output builder: a
// metadata banner, section breaks, and an indent stack.
type Builder struct {
	sb            strings.Builder
	indentSymbol  string
	indentLevel   int
	commentSymbol string
}

// NewBuilder starts a builder for the named target language, opening it
// with a metadata banner comment.
func NewBuilder(langName, indentSymbol, commentSymbol string) *Builder {
	b := &Builder{indentSymbol: indentSymbol, commentSymbol: commentSymbol}
	b.AddMultilineSection([]string{
		"Output Metadata",
		"Target: " + langName,
		"Compiler: " + CompilerName + " v" + CompilerVersion,
	})
	b.AddLine()
	return b
}

// AddComment writes a single comment line.
func (b *Builder) AddComment(comment string) {
	b.PushLine(b.commentSymbol + " " + comment)
}

// AddComments writes one comment line per entry.
func (b *Builder) AddComments(comments []string) {
	for _, c := range comments {
		b.AddComment(c)
	}
}

const terminalWidth = 80

// AddMultilineSection writes a comment-bordered banner framing each of
// sections as its own centered line.
func (b *Builder) AddMultilineSection(sections []string) {
	border := strings.Repeat(b.commentSymbol, terminalWidth)
	if len(border) > terminalWidth {
		border = border[:terminalWidth]
	}

	b.PushLine(border)
	for _, section := range sections {
		content := " " + section + " "
		prefix := (len(border) - len(content)) / 2
		if prefix < 0 {
			prefix = 0
		}
		suffix := len(border) - prefix - len(content)
		if suffix < 0 {
			suffix = 0
		}
		b.PushLine(border[:prefix] + content + border[len(border)-suffix:])
	}
	b.PushLine(border)
	b.AddLine()
}

// AddSection writes a one-line banner.
func (b *Builder) AddSection(section string) { b.AddMultilineSection([]string{section}) }

// Indent increases the indentation level by one.
func (b *Builder) Indent() { b.indentLevel++ }

// Unindent decreases the indentation level by one.
func (b *Builder) Unindent() { b.indentLevel-- }

func (b *Builder) addIndentation() {
	for i := 0; i < b.indentLevel; i++ {
		b.sb.WriteString(b.indentSymbol)
	}
}

// Push appends s with no indentation or trailing newline.
func (b *Builder) Push(s string) { b.sb.WriteString(s) }

// PushLine appends an indented line followed by a newline.
func (b *Builder) PushLine(line string) {
	b.addIndentation()
	b.sb.WriteString(line)
	b.AddLine()
}

// AddLine appends a bare newline.
func (b *Builder) AddLine() { b.sb.WriteByte('\n') }

// String returns the accumulated output.
func (b *Builder) String() string { return b.sb.String() }
