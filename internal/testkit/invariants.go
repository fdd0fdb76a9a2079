package testkit

import (
	"fmt"

	"reshape/internal/syntax"
	"reshape/internal/token"
)

// CheckTreeInvariants runs structural invariants over a whole tree:
//  1. every node kind and token kind is known
//  2. a declaration owns an introducer keyword and at least one binding
//  3. only non-final bindings of a declaration carry a trailing comma
//  4. a block is delimited by matching brace tokens
func CheckTreeInvariants(n *syntax.Node) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if !n.Kind().IsValid() {
		return fmt.Errorf("unknown node kind %d", uint8(n.Kind()))
	}

	switch n.Kind() {
	case syntax.KindVarDecl:
		if err := checkDecl(n); err != nil {
			return err
		}
	case syntax.KindBlock:
		if err := checkBlock(n); err != nil {
			return err
		}
	}

	for i, c := range n.Children() {
		switch {
		case c.IsToken():
			if !c.Tok.Kind.IsValid() {
				return fmt.Errorf("%s child %d: unknown token kind %d", n.Kind(), i, uint8(c.Tok.Kind))
			}
		case c.IsNode():
			if err := CheckTreeInvariants(c.Node); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s child %d: empty child slot", n.Kind(), i)
		}
	}
	return nil
}

func checkDecl(n *syntax.Node) error {
	decl, ok := syntax.AsVarDecl(n)
	if !ok {
		return fmt.Errorf("not a declaration node")
	}
	if n.NumChildren() == 0 || !n.Child(0).IsToken() || !n.Child(0).Tok.Kind.IsDeclIntroducer() {
		return fmt.Errorf("declaration must start with a 'let'/'var' keyword")
	}
	bindings := decl.Bindings()
	if len(bindings) == 0 {
		return fmt.Errorf("declaration with zero bindings")
	}
	for i, b := range bindings {
		last := i == len(bindings)-1
		if last && b.Comma() != nil {
			return fmt.Errorf("last binding %d carries a trailing comma", i)
		}
		if !last && b.Comma() == nil {
			return fmt.Errorf("non-final binding %d is missing its separator", i)
		}
	}
	return nil
}

func checkBlock(n *syntax.Node) error {
	if n.NumChildren() < 2 {
		return fmt.Errorf("block with fewer than two children")
	}
	first, last := n.Child(0), n.Child(n.NumChildren()-1)
	if !first.IsToken() || first.Tok.Kind != token.LBrace {
		return fmt.Errorf("block must open with '{'")
	}
	if !last.IsToken() || last.Tok.Kind != token.RBrace {
		return fmt.Errorf("block must close with '}'")
	}
	return nil
}
