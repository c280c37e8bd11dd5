package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/loc"
)

// Error is a fatal lexing failure. The lexer is fail-fast: the first
// error aborts the scan, mirroring the reference implementation's
// Result<Vec<Token>, Error> return type.
type Error struct {
	Code    diag.Code
	Message string
	Span    loc.Span
}

func (e *Error) Error() string { return e.Message }

// ToDiagnostic converts the lexer error into the shared diagnostic shape.
func (e *Error) ToDiagnostic() diag.Diagnostic {
	return diag.New(diag.StageLexer, e.Code, e.Message, e.Span)
}

func newError(code diag.Code, message string, at loc.Location) *Error {
	return &Error{Code: code, Message: message, Span: loc.NewSpan(at, at)}
}

type stateKind int

const (
	stateString stateKind = iota
	stateComment
	stateIdentifier
)

// lexState is the lexer's mode stack, which never exceeds depth 1: a nil
// *lexState means "no active mode".
type lexState struct {
	kind  stateKind
	text  string
	start loc.Location
}

// Lex scans input into a token stream. start anchors the first character;
// callers lexing a named file pass a File-variant location, callers
// lexing an in-memory string for tests pass a Text-variant location.
func Lex(input string, start loc.Location) ([]Token, *Error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var tokens []Token
	var state *lexState
	working := start

	for _, c := range input {
		var err *Error
		switch c {
		case '"':
			state, err = handleQuote(state, &tokens, c, working)
		case '#':
			state, err = handleComment(state, &tokens, c, working)
		default:
			state, err = handleCharacter(state, &tokens, c, working)
		}
		if err != nil {
			return nil, err
		}

		if c == '\n' {
			working = working.IncLine()
		} else {
			working = working.IncColumn()
		}
	}

	if state != nil {
		tok, err := handleRemainingState(*state, working)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	for i := range tokens {
		tokens[i] = finalizeToken(tokens[i])
	}

	return mergeTokens(tokens)
}

func handleQuote(state *lexState, tokens *[]Token, c rune, working loc.Location) (*lexState, *Error) {
	if state == nil {
		return &lexState{kind: stateString, start: working}, nil
	}
	switch state.kind {
	case stateString:
		if n := len(state.text); n > 0 && state.text[n-1] == '\\' {
			state.text = state.text[:n-1] + string(c)
			return state, nil
		}
		*tokens = append(*tokens, Token{Kind: KindString, Text: state.text, Span: loc.NewSpan(state.start, working)})
		return nil, nil
	case stateComment:
		state.text += string(c)
		return state, nil
	default: // stateIdentifier
		return nil, newError(diag.CodeLexStringInIdentifier, "Cannot have strings inside identifiers", working)
	}
}

func handleComment(state *lexState, tokens *[]Token, c rune, working loc.Location) (*lexState, *Error) {
	if state == nil {
		return &lexState{kind: stateComment, start: working}, nil
	}
	switch state.kind {
	case stateString:
		return nil, newError(diag.CodeLexCommentInString, "Cannot have comments inside strings", working)
	case stateComment:
		state.text += string(c)
		return state, nil
	default: // stateIdentifier
		*tokens = append(*tokens, Token{Kind: KindIdent, Text: state.text, Span: loc.NewSpan(state.start, working)})
		return &lexState{kind: stateComment, start: working}, nil
	}
}

// terminalEnd is the span end of a one-character terminal token starting
// at working.
func terminalEnd(working loc.Location) loc.Location { return working.IncColumn() }

func handleCharacter(state *lexState, tokens *[]Token, c rune, working loc.Location) (*lexState, *Error) {
	if state == nil {
		if unicode.IsSpace(c) {
			return nil, nil
		}
		if kind, ok := terminalTokens[c]; ok {
			*tokens = append(*tokens, Token{Kind: kind, Span: loc.NewSpan(working, terminalEnd(working))})
			return nil, nil
		}
		return &lexState{kind: stateIdentifier, text: string(c), start: working}, nil
	}

	switch state.kind {
	case stateString:
		state.text += string(c)
		return state, nil
	case stateComment:
		if c == '\n' {
			*tokens = append(*tokens, Token{Kind: KindComment, Lines: []string{state.text}, Span: loc.NewSpan(state.start, working)})
			return nil, nil
		}
		state.text += string(c)
		return state, nil
	default: // stateIdentifier
		if unicode.IsSpace(c) {
			*tokens = append(*tokens, Token{Kind: KindIdent, Text: state.text, Span: loc.NewSpan(state.start, working)})
			return nil, nil
		}
		if kind, ok := terminalTokens[c]; ok {
			*tokens = append(*tokens, Token{Kind: KindIdent, Text: state.text, Span: loc.NewSpan(state.start, working)})
			*tokens = append(*tokens, Token{Kind: kind, Span: loc.NewSpan(working, terminalEnd(working))})
			return nil, nil
		}
		state.text += string(c)
		return state, nil
	}
}

func handleRemainingState(state lexState, working loc.Location) (Token, *Error) {
	switch state.kind {
	case stateString:
		return Token{}, newError(diag.CodeLexUnterminatedString, "Unterminated string", working.SubColumn())
	case stateComment:
		return Token{Kind: KindComment, Lines: []string{state.text}, Span: loc.NewSpan(state.start, working)}, nil
	default: // stateIdentifier
		return Token{Kind: KindIdent, Text: state.text, Span: loc.NewSpan(state.start, working)}, nil
	}
}

// finalizeToken trims comment text and promotes identifiers that parse as
// numbers (e.g. a bare "42") into number tokens.
func finalizeToken(t Token) Token {
	switch t.Kind {
	case KindComment:
		lines := make([]string, len(t.Lines))
		for i, l := range t.Lines {
			lines[i] = strings.TrimSpace(l)
		}
		t.Lines = lines
	case KindIdent:
		id := strings.TrimSpace(t.Text)
		if n, err := strconv.ParseFloat(id, 64); err == nil {
			t.Kind = KindNumber
			t.Num = n
			t.Text = ""
		} else {
			t.Text = id
		}
	}
	return t
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// mergeTokens runs the two ordered post-passes: consecutive same-column
// comment joining, then operator fusion and multi-token number assembly
// in a single linear scan.
func mergeTokens(tokens []Token) ([]Token, *Error) {
	var out []Token
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if tok.Kind == KindComment {
			lines := append([]string(nil), tok.Lines...)
			start := tok.Span.Start
			end := tok.Span.End
			last := tok
			next := i + 1
			merged := false
			for next < len(tokens) && tokens[next].Kind == KindComment {
				cand := tokens[next]
				if subsequentLine(last, cand) && last.Span.Start.Column() == cand.Span.Start.Column() {
					merged = true
					lines = append(lines, cand.Lines...)
					end = cand.Span.End
					last = cand
					next++
					continue
				}
				break
			}
			if merged {
				out = append(out, Token{Kind: KindComment, Lines: lines, Span: loc.NewSpan(start, end)})
				i = next
				continue
			}
		}

		if next := i + 1; next < len(tokens) && backToBack(tok, tokens[next]) {
			nextTok := tokens[next]

			if fused, ok := fusionTable[[2]Kind{tok.Kind, nextTok.Kind}]; ok {
				out = append(out, Token{Kind: fused, Span: loc.NewSpan(tok.Span.Start, nextTok.Span.End)})
				i += 2
				continue
			}

			if tok.Kind == KindNumber && nextTok.Kind == KindPeriod {
				start := tok.Span.Start
				end := nextTok.Span.End
				working := formatNumber(tok.Num) + "."
				consumed := 2

				third := next + 1
				if third < len(tokens) && backToBack(nextTok, tokens[third]) && tokens[third].Kind == KindNumber {
					working += formatNumber(tokens[third].Num)
					end = tokens[third].Span.End
					consumed = 3
				}

				val, convErr := strconv.ParseFloat(working, 64)
				if convErr != nil {
					return nil, newError(diag.CodeLexMultiplePeriods, "Cannot have multiple periods in a number", start)
				}

				merged := Token{Kind: KindNumber, Num: val, Span: loc.NewSpan(start, end)}
				newIndex := i + consumed
				if newIndex < len(tokens) && backToBack(merged, tokens[newIndex]) && tokens[newIndex].Kind == KindPeriod {
					return nil, newError(diag.CodeLexMultiplePeriods, "Cannot have multiple periods in a number", tokens[newIndex].Span.Start)
				}

				out = append(out, merged)
				i = newIndex
				continue
			}
		}

		out = append(out, tok)
		i++
	}
	return out, nil
}
