package token

import "strings"

// Token represents a single source token together with the trivia that
// surrounds it. Tokens are value types and are never mutated after
// construction; the With* helpers return modified copies.
type Token struct {
	Kind     Kind
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// New constructs a token with no surrounding trivia.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// WithLeading returns a copy of the token with its leading trivia replaced.
// The given slice is owned by the returned token and must not be modified
// by the caller afterwards.
func (t Token) WithLeading(tv []Trivia) Token {
	t.Leading = tv
	return t
}

// WithTrailing returns a copy of the token with its trailing trivia replaced.
func (t Token) WithTrailing(tv []Trivia) Token {
	t.Trailing = tv
	return t
}

// StartsLine reports whether the token's leading trivia carries a line break,
// i.e. whether the token is the first on its line.
func (t Token) StartsLine() bool {
	return HasNewline(t.Leading)
}

// Render writes leading trivia, token text, and trailing trivia in source
// order.
func (t Token) Render(sb *strings.Builder) {
	for _, tv := range t.Leading {
		sb.WriteString(tv.Render())
	}
	sb.WriteString(t.Text)
	for _, tv := range t.Trailing {
		sb.WriteString(tv.Render())
	}
}

// Source returns the full source text of the token including trivia.
func (t Token) Source() string {
	var sb strings.Builder
	t.Render(&sb)
	return sb.String()
}
