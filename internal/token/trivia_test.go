package token_test

import (
	"testing"

	"reshape/internal/token"
)

func TestStripNewlinesKeepsOrder(t *testing.T) {
	in := []token.Trivia{
		token.Newlines(2),
		token.Spaces(4),
		token.BlockComment("/* keep */"),
		token.Newlines(1),
		token.Spaces(2),
	}
	out := token.StripNewlines(in)

	if len(out) != 3 {
		t.Fatalf("expected 3 pieces, got %d", len(out))
	}
	if out[0].Kind != token.TriviaSpace || out[0].Count != 4 {
		t.Errorf("piece 0: expected Space(4), got %v(%d)", out[0].Kind, out[0].Count)
	}
	if out[1].Kind != token.TriviaBlockComment || out[1].Text != "/* keep */" {
		t.Errorf("piece 1: expected block comment, got %v %q", out[1].Kind, out[1].Text)
	}
	if out[2].Kind != token.TriviaSpace || out[2].Count != 2 {
		t.Errorf("piece 2: expected Space(2), got %v(%d)", out[2].Kind, out[2].Count)
	}
}

func TestStripNewlinesDoesNotModifyInput(t *testing.T) {
	in := []token.Trivia{token.Newlines(1), token.Spaces(2)}
	_ = token.StripNewlines(in)

	if in[0].Kind != token.TriviaNewline || in[1].Kind != token.TriviaSpace {
		t.Fatal("input sequence was modified")
	}
}

func TestStripNewlinesEmptyResult(t *testing.T) {
	if out := token.StripNewlines([]token.Trivia{token.Newlines(3)}); out != nil {
		t.Fatalf("expected nil, got %v", out)
	}
	if out := token.StripNewlines(nil); out != nil {
		t.Fatalf("expected nil for nil input, got %v", out)
	}
}

func TestTriviaRender(t *testing.T) {
	tests := []struct {
		name string
		tv   token.Trivia
		want string
	}{
		{"spaces", token.Spaces(3), "   "},
		{"newlines", token.Newlines(2), "\n\n"},
		{"line comment", token.LineComment("// note"), "// note"},
		{"block comment", token.BlockComment("/* x */"), "/* x */"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tv.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenSource(t *testing.T) {
	tok := token.New(token.KwVar, "var").
		WithLeading([]token.Trivia{token.Newlines(1), token.Spaces(4)}).
		WithTrailing([]token.Trivia{token.Spaces(1)})

	if got, want := tok.Source(), "\n    var "; got != want {
		t.Fatalf("Source() = %q, want %q", got, want)
	}
	if !tok.StartsLine() {
		t.Fatal("expected token to start a line")
	}
}

func TestWithLeadingDoesNotMutateOriginal(t *testing.T) {
	orig := token.New(token.Ident, "x")
	modified := orig.WithLeading([]token.Trivia{token.Spaces(1)})

	if len(orig.Leading) != 0 {
		t.Fatal("original token was mutated")
	}
	if len(modified.Leading) != 1 {
		t.Fatal("modified token missing leading trivia")
	}
}
