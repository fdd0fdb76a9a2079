package syntax

import (
	"strings"

	"reshape/internal/token"
)

// Child is one slot of a node: either a token or a sub-node, never both.
type Child struct {
	Tok  *token.Token
	Node *Node
}

// TokenChild wraps a token as a node child. The token is copied, so later
// changes to the caller's value do not leak into the tree.
func TokenChild(t token.Token) Child {
	return Child{Tok: &t}
}

// NodeChild wraps a sub-node as a child.
func NodeChild(n *Node) Child {
	return Child{Node: n}
}

// IsToken reports whether the child holds a token.
func (c Child) IsToken() bool { return c.Tok != nil }

// IsNode reports whether the child holds a sub-node.
func (c Child) IsNode() bool { return c.Node != nil }

// Node is an immutable syntax tree node: a kind plus an ordered child
// sequence. Rewrites never mutate a node; they build replacements that share
// unchanged children with the original by pointer.
type Node struct {
	kind     NodeKind
	children []Child
}

// NewNode constructs a node. The children slice is owned by the node and
// must not be modified by the caller afterwards.
func NewNode(kind NodeKind, children []Child) *Node {
	return &Node{kind: kind, children: children}
}

// Kind returns the node's kind tag.
func (n *Node) Kind() NodeKind { return n.kind }

// NumChildren returns the number of child slots.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child slot.
func (n *Node) Child(i int) Child { return n.children[i] }

// Children returns the node's child slots.
// READONLY: the slice aliases the node's internal storage.
func (n *Node) Children() []Child { return n.children }

// WithChildren returns a new node of the same kind with the given children.
func (n *Node) WithChildren(children []Child) *Node {
	return &Node{kind: n.kind, children: children}
}

// FirstToken returns the first token in tree order, or nil for a node that
// contains no tokens at all.
func (n *Node) FirstToken() *token.Token {
	for _, c := range n.children {
		if c.IsToken() {
			return c.Tok
		}
		if c.IsNode() {
			if t := c.Node.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LeadingTrivia returns the leading trivia of the node's first token.
func (n *Node) LeadingTrivia() []token.Trivia {
	if t := n.FirstToken(); t != nil {
		return t.Leading
	}
	return nil
}

// WithLeadingTrivia returns a copy of the tree with the first token's
// leading trivia replaced. Only the spine down to that token is rebuilt;
// every other subtree is shared with the original. The original node is
// returned unchanged if it contains no tokens.
func (n *Node) WithLeadingTrivia(tv []token.Trivia) *Node {
	for i, c := range n.children {
		switch {
		case c.IsToken():
			children := make([]Child, len(n.children))
			copy(children, n.children)
			children[i] = TokenChild(c.Tok.WithLeading(tv))
			return n.WithChildren(children)
		case c.IsNode():
			if c.Node.FirstToken() == nil {
				continue
			}
			children := make([]Child, len(n.children))
			copy(children, n.children)
			children[i] = NodeChild(c.Node.WithLeadingTrivia(tv))
			return n.WithChildren(children)
		}
	}
	return n
}

// StatementRange returns the index range [start, end) of the node's
// statement sequence, or ok=false for kinds that own no such sequence.
// File statements span all children; block statements sit between the
// braces.
func (n *Node) StatementRange() (start, end int, ok bool) {
	switch n.kind {
	case KindFile:
		return 0, len(n.children), true
	case KindBlock:
		if len(n.children) < 2 {
			return 0, 0, false
		}
		return 1, len(n.children) - 1, true
	default:
		return 0, 0, false
	}
}

// Render writes the node's full source text, trivia included, in order.
func (n *Node) Render(sb *strings.Builder) {
	for _, c := range n.children {
		if c.IsToken() {
			c.Tok.Render(sb)
		} else if c.IsNode() {
			c.Node.Render(sb)
		}
	}
}

// Text reconstructs the node's source text verbatim. Rendering makes no
// layout decisions: it is a pure concatenation of trivia and token text.
func (n *Node) Text() string {
	var sb strings.Builder
	n.Render(&sb)
	return sb.String()
}
