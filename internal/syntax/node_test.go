package syntax_test

import (
	"testing"

	"reshape/internal/syntax"
	"reshape/internal/token"
)

func ident(text string) token.Token {
	return token.New(token.Ident, text)
}

// buildDecl assembles `var a, b: Int` with canonical trivia.
func buildDecl(t *testing.T) *syntax.Node {
	t.Helper()
	kw := token.New(token.KwVar, "var").WithTrailing([]token.Trivia{token.Spaces(1)})
	comma := token.New(token.Comma, ",").WithTrailing([]token.Trivia{token.Spaces(1)})
	colon := token.New(token.Colon, ":").WithTrailing([]token.Trivia{token.Spaces(1)})

	first := syntax.NewBinding(syntax.TokenChild(ident("a")), nil, nil, nil, &comma)
	ann := syntax.NewTypeAnnotation(colon, syntax.TokenChild(ident("Int")))
	second := syntax.NewBinding(syntax.TokenChild(ident("b")), ann, nil, nil, nil)
	return syntax.NewVarDecl(kw, first, second)
}

func TestTextRoundTrip(t *testing.T) {
	decl := buildDecl(t)
	if got, want := decl.Text(), "var a, b: Int"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestVarDeclAccessors(t *testing.T) {
	decl, ok := syntax.AsVarDecl(buildDecl(t))
	if !ok {
		t.Fatal("AsVarDecl failed")
	}
	if got := decl.Keyword().Text; got != "var" {
		t.Errorf("Keyword() = %q, want %q", got, "var")
	}
	if got := decl.BindingCount(); got != 2 {
		t.Fatalf("BindingCount() = %d, want 2", got)
	}

	bindings := decl.Bindings()
	if bindings[0].Comma() == nil {
		t.Error("first binding should carry a trailing comma")
	}
	if bindings[1].Comma() != nil {
		t.Error("last binding must not carry a trailing comma")
	}
	if bindings[0].Annotation() != nil {
		t.Error("first binding should have no annotation")
	}
	if bindings[1].Annotation() == nil {
		t.Error("second binding should carry the annotation")
	}
}

func TestAsVarDeclRejectsOtherKinds(t *testing.T) {
	expr := syntax.NewExpr(syntax.TokenChild(ident("x")))
	if _, ok := syntax.AsVarDecl(expr); ok {
		t.Fatal("AsVarDecl accepted an expression node")
	}
	if _, ok := syntax.AsVarDecl(nil); ok {
		t.Fatal("AsVarDecl accepted nil")
	}
}

func TestWithLeadingTriviaSharesSubtrees(t *testing.T) {
	decl := buildDecl(t)
	moved := decl.WithLeadingTrivia([]token.Trivia{token.Newlines(1)})

	if moved == decl {
		t.Fatal("expected a new root")
	}
	if got, want := moved.Text(), "\nvar a, b: Int"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	// Original must be untouched.
	if got, want := decl.Text(), "var a, b: Int"; got != want {
		t.Fatalf("original mutated: %q, want %q", got, want)
	}
	// Binding subtrees are shared, not copied.
	for i := 1; i < decl.NumChildren(); i++ {
		if decl.Child(i).Node != moved.Child(i).Node {
			t.Errorf("child %d was copied instead of shared", i)
		}
	}
}

func TestWithLeadingTriviaDescendsIntoNodes(t *testing.T) {
	lparen := token.New(token.LParen, "(")
	rparen := token.New(token.RParen, ")")
	comma := token.New(token.Comma, ",").WithTrailing([]token.Trivia{token.Spaces(1)})
	pattern := syntax.NewTuplePattern(lparen, []syntax.Child{
		syntax.TokenChild(ident("x")),
		syntax.TokenChild(comma),
		syntax.TokenChild(ident("y")),
	}, rparen)
	binding := syntax.NewBinding(syntax.NodeChild(pattern), nil, nil, nil, nil)

	moved := binding.WithLeadingTrivia([]token.Trivia{token.Spaces(2)})
	if got, want := moved.Text(), "  (x, y)"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if got, want := binding.Text(), "(x, y)"; got != want {
		t.Fatalf("original mutated: %q, want %q", got, want)
	}
}

func TestStatementRange(t *testing.T) {
	decl := buildDecl(t)
	file := syntax.NewFile(decl)
	start, end, ok := file.StatementRange()
	if !ok || start != 0 || end != 1 {
		t.Fatalf("file range = (%d, %d, %v), want (0, 1, true)", start, end, ok)
	}

	block := syntax.NewBlock(token.New(token.LBrace, "{"), []*syntax.Node{decl}, token.New(token.RBrace, "}"))
	start, end, ok = block.StatementRange()
	if !ok || start != 1 || end != 2 {
		t.Fatalf("block range = (%d, %d, %v), want (1, 2, true)", start, end, ok)
	}

	if _, _, ok := decl.StatementRange(); ok {
		t.Fatal("a declaration must not own a statement sequence")
	}
}

func TestFirstTokenNested(t *testing.T) {
	lparen := token.New(token.LParen, "(")
	rparen := token.New(token.RParen, ")")
	pattern := syntax.NewTuplePattern(lparen, []syntax.Child{syntax.TokenChild(ident("x"))}, rparen)
	binding := syntax.NewBinding(syntax.NodeChild(pattern), nil, nil, nil, nil)

	tok := binding.FirstToken()
	if tok == nil || tok.Kind != token.LParen {
		t.Fatalf("FirstToken() = %v, want LParen", tok)
	}
}
