package lexer_test

import (
	"testing"

	"github.com/ecsdsl/compiler/internal/lexer"
	"github.com/ecsdsl/compiler/internal/loc"
)

func lex(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Lex(src, loc.NewText(0, 0))
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return toks
}

func TestLexesTerminalPunctuation(t *testing.T) {
	toks := lex(t, "{}()[]")
	want := []lexer.Kind{lexer.KindLBrace, lexer.KindRBrace, lexer.KindLParen, lexer.KindRParen, lexer.KindLBracket, lexer.KindRBracket}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, got %s", i, k, toks[i].Kind)
		}
	}
}

func TestFusesTwoCharacterOperators(t *testing.T) {
	toks := lex(t, "+= == <= >>")
	want := []lexer.Kind{lexer.KindPlusAssign, lexer.KindEq, lexer.KindLe, lexer.KindShr}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, got %s", i, k, toks[i].Kind)
		}
	}
}

func TestDoesNotFuseWhenSeparatedByWhitespace(t *testing.T) {
	toks := lex(t, "+ =")
	if len(toks) != 2 || toks[0].Kind != lexer.KindPlus || toks[1].Kind != lexer.KindAssign {
		t.Fatalf("expected separate + and = tokens, got %+v", toks)
	}
}

func TestAssemblesMultiPartNumber(t *testing.T) {
	toks := lex(t, "3.14")
	if len(toks) != 1 || toks[0].Kind != lexer.KindNumber || toks[0].Num != 3.14 {
		t.Fatalf("expected single number token 3.14, got %+v", toks)
	}
}

func TestMultiplePeriodsInNumberIsFatal(t *testing.T) {
	_, err := lexer.Lex("1.2.3", loc.NewText(0, 0))
	if err == nil {
		t.Fatal("expected error for multiple periods in a number")
	}
}

func TestIdentifierParsedAsBareNumber(t *testing.T) {
	toks := lex(t, "42")
	if len(toks) != 1 || toks[0].Kind != lexer.KindNumber || toks[0].Num != 42 {
		t.Fatalf("expected number token 42, got %+v", toks)
	}
}

func TestStringLiteralWithEscapedQuote(t *testing.T) {
	toks := lex(t, `"hello \" world"`)
	if len(toks) != 1 || toks[0].Kind != lexer.KindString {
		t.Fatalf("expected single string token, got %+v", toks)
	}
	if toks[0].Text != `hello " world` {
		t.Fatalf("expected unescaped quote in string, got %q", toks[0].Text)
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	_, err := lexer.Lex(`"never closed`, loc.NewText(0, 0))
	if err == nil {
		t.Fatal("expected unterminated string error")
	}
}

func TestCommentJoiningMergesAlignedConsecutiveLines(t *testing.T) {
	src := "# first line\n# second line\nfoo"
	toks := lex(t, src)
	if len(toks) != 2 {
		t.Fatalf("expected a merged comment and an identifier, got %d tokens: %+v", len(toks), toks)
	}
	if toks[0].Kind != lexer.KindComment {
		t.Fatalf("expected first token to be a comment, got %s", toks[0].Kind)
	}
	if len(toks[0].Lines) != 2 || toks[0].Lines[0] != "first line" || toks[0].Lines[1] != "second line" {
		t.Fatalf("expected two joined comment lines, got %+v", toks[0].Lines)
	}
}

func TestCommentJoiningSkipsMisalignedColumns(t *testing.T) {
	src := "# first\n  # indented differently\n"
	toks := lex(t, src)
	if len(toks) != 2 {
		t.Fatalf("expected two separate comments, got %d: %+v", len(toks), toks)
	}
}

func TestCommentTerminatedByNewline(t *testing.T) {
	toks := lex(t, "# a comment\nident")
	if len(toks) != 2 || toks[0].Kind != lexer.KindComment || toks[1].Kind != lexer.KindIdent {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestStringInsideIdentifierIsFatal(t *testing.T) {
	// An identifier char run immediately followed by a quote with no
	// separating whitespace triggers the "strings inside identifiers"
	// guard, since the quote handler sees an active Identifier state.
	_, err := lexer.Lex(`abc"def"`, loc.NewText(0, 0))
	if err == nil {
		t.Fatal("expected error for string starting inside an identifier run")
	}
}
