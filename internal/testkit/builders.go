// Package testkit provides tree construction helpers and structural
// invariant checks shared by the engine's test suites. It stands in for the
// external parser: trees built here follow the same canonical layouts and
// trivia conventions a parser front end would produce.
package testkit

import (
	"reshape/internal/syntax"
	"reshape/internal/token"
)

// BindingSpec describes one binding of a declaration to build.
type BindingSpec struct {
	Name string
	Type string // empty means no annotation
	Init string // empty means no initializer
}

// Named returns a plain binding spec with no annotation or initializer.
func Named(name string) BindingSpec {
	return BindingSpec{Name: name}
}

// Typed returns a binding spec carrying a type annotation.
func Typed(name, typeName string) BindingSpec {
	return BindingSpec{Name: name, Type: typeName}
}

func space() []token.Trivia {
	return []token.Trivia{token.Spaces(1)}
}

// Keyword builds a declaration introducer token followed by one space.
func Keyword(text string) token.Token {
	kind := token.KwVar
	if text == "let" {
		kind = token.KwLet
	}
	return token.New(kind, text).WithTrailing(space())
}

// Decl builds a declaration like `var a, b: Int = 0` with canonical
// single-space trivia: the comma carries its following space as trailing
// trivia, so the next binding's leading trivia is empty.
func Decl(kw string, specs ...BindingSpec) *syntax.Node {
	bindings := make([]*syntax.Node, 0, len(specs))
	for i, spec := range specs {
		var annotation *syntax.Node
		if spec.Type != "" {
			colon := token.New(token.Colon, ":").WithTrailing(space())
			annotation = syntax.NewTypeAnnotation(colon, syntax.TokenChild(token.New(token.Ident, spec.Type)))
		}
		var assign *token.Token
		var init *syntax.Node
		if spec.Init != "" {
			eq := token.New(token.Assign, "=").WithLeading(space()).WithTrailing(space())
			assign = &eq
			init = syntax.NewExpr(syntax.TokenChild(token.New(token.Ident, spec.Init)))
		}
		var comma *token.Token
		if i < len(specs)-1 {
			c := token.New(token.Comma, ",").WithTrailing(space())
			comma = &c
		}
		pattern := syntax.TokenChild(token.New(token.Ident, spec.Name))
		bindings = append(bindings, syntax.NewBinding(pattern, annotation, assign, init, comma))
	}
	return syntax.NewVarDecl(Keyword(kw), bindings...)
}

// TupleDecl builds a destructuring declaration like `let (x, y) = pair`:
// one binding whose pattern is a tuple.
func TupleDecl(kw string, names []string, init string) *syntax.Node {
	elements := make([]syntax.Child, 0, len(names)*2)
	for i, name := range names {
		elements = append(elements, syntax.TokenChild(token.New(token.Ident, name)))
		if i < len(names)-1 {
			elements = append(elements, syntax.TokenChild(token.New(token.Comma, ",").WithTrailing(space())))
		}
	}
	pattern := syntax.NewTuplePattern(token.New(token.LParen, "("), elements, token.New(token.RParen, ")"))

	eq := token.New(token.Assign, "=").WithLeading(space()).WithTrailing(space())
	initExpr := syntax.NewExpr(syntax.TokenChild(token.New(token.Ident, init)))
	binding := syntax.NewBinding(syntax.NodeChild(pattern), nil, &eq, initExpr, nil)
	return syntax.NewVarDecl(Keyword(kw), binding)
}

// Stmt builds an opaque expression statement from an identifier, preceded by
// a newline so it renders on its own line.
func Stmt(name string) *syntax.Node {
	tok := token.New(token.Ident, name).WithLeading([]token.Trivia{token.Newlines(1)})
	return syntax.NewExpr(syntax.TokenChild(tok))
}

// Block wraps statements in braces, each brace on its own line.
func Block(stmts ...*syntax.Node) *syntax.Node {
	lbrace := token.New(token.LBrace, "{")
	rbrace := token.New(token.RBrace, "}").WithLeading([]token.Trivia{token.Newlines(1)})
	return syntax.NewBlock(lbrace, stmts, rbrace)
}

// FuncLit wraps a block body in an anonymous function `fn ()`.
func FuncLit(body *syntax.Node) *syntax.Node {
	fn := token.New(token.KwFn, "fn").WithTrailing(space())
	lparen := token.New(token.LParen, "(")
	rparen := token.New(token.RParen, ")").WithTrailing(space())
	return syntax.NewFuncLit(fn, lparen, nil, rparen, body)
}
