package token

import "strings"

// TriviaKind classifies a single piece of non-semantic source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// IsValid reports whether k is a known trivia kind.
func (k TriviaKind) IsValid() bool {
	return k <= TriviaBlockComment
}

// Trivia is one piece of whitespace or comment text attached to a token.
// Space and Newline pieces carry a repeat count; comment pieces carry the
// full comment text including its markers.
type Trivia struct {
	Kind  TriviaKind
	Count int
	Text  string
}

// Spaces returns a run of n space characters.
func Spaces(n int) Trivia {
	return Trivia{Kind: TriviaSpace, Count: n}
}

// Newlines returns a run of n newline characters.
func Newlines(n int) Trivia {
	return Trivia{Kind: TriviaNewline, Count: n}
}

// LineComment returns a line comment piece. Text must include the `//` marker.
func LineComment(text string) Trivia {
	return Trivia{Kind: TriviaLineComment, Text: text}
}

// BlockComment returns a block comment piece. Text must include the
// `/* */` markers.
func BlockComment(text string) Trivia {
	return Trivia{Kind: TriviaBlockComment, Text: text}
}

// IsNewline reports whether the piece contributes at least one line break.
func (t Trivia) IsNewline() bool {
	return t.Kind == TriviaNewline && t.Count > 0
}

// Render returns the source text of the piece.
func (t Trivia) Render() string {
	switch t.Kind {
	case TriviaSpace:
		return strings.Repeat(" ", t.Count)
	case TriviaNewline:
		return strings.Repeat("\n", t.Count)
	case TriviaLineComment, TriviaBlockComment:
		return t.Text
	}
	return ""
}

// RenderTrivia concatenates the source text of a trivia sequence.
func RenderTrivia(tv []Trivia) string {
	if len(tv) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range tv {
		sb.WriteString(t.Render())
	}
	return sb.String()
}

// HasNewline reports whether the sequence contains any newline piece.
func HasNewline(tv []Trivia) bool {
	for _, t := range tv {
		if t.IsNewline() {
			return true
		}
	}
	return false
}

// StripNewlines returns a copy of tv with every newline piece removed,
// keeping all other pieces in their original relative order. The input is
// never modified. A nil result means the filtered sequence is empty.
func StripNewlines(tv []Trivia) []Trivia {
	if !HasNewline(tv) {
		if len(tv) == 0 {
			return nil
		}
		out := make([]Trivia, len(tv))
		copy(out, tv)
		return out
	}
	out := make([]Trivia, 0, len(tv))
	for _, t := range tv {
		if t.Kind == TriviaNewline {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
