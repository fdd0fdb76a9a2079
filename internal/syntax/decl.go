package syntax

import "reshape/internal/token"

// Builders assemble canonical child layouts per kind. Accessors on the typed
// wrappers below rely on these layouts.

// NewFile builds a top-level node whose children are statements.
func NewFile(stmts ...*Node) *Node {
	children := make([]Child, 0, len(stmts))
	for _, s := range stmts {
		children = append(children, NodeChild(s))
	}
	return NewNode(KindFile, children)
}

// NewBlock builds '{' stmts '}'.
func NewBlock(lbrace token.Token, stmts []*Node, rbrace token.Token) *Node {
	children := make([]Child, 0, len(stmts)+2)
	children = append(children, TokenChild(lbrace))
	for _, s := range stmts {
		children = append(children, NodeChild(s))
	}
	children = append(children, TokenChild(rbrace))
	return NewNode(KindBlock, children)
}

// NewFuncLit builds 'fn' '(' params ')' body. The body must be a block.
func NewFuncLit(fnKw, lparen token.Token, params []Child, rparen token.Token, body *Node) *Node {
	children := make([]Child, 0, len(params)+4)
	children = append(children, TokenChild(fnKw), TokenChild(lparen))
	children = append(children, params...)
	children = append(children, TokenChild(rparen), NodeChild(body))
	return NewNode(KindFuncLit, children)
}

// NewExpr builds an opaque expression from tokens and sub-nodes.
func NewExpr(children ...Child) *Node {
	return NewNode(KindExpr, children)
}

// NewTypeAnnotation builds ':' followed by a type expression.
func NewTypeAnnotation(colon token.Token, typeExpr ...Child) *Node {
	children := make([]Child, 0, len(typeExpr)+1)
	children = append(children, TokenChild(colon))
	children = append(children, typeExpr...)
	return NewNode(KindTypeAnnotation, children)
}

// NewTuplePattern builds '(' elements ')'.
func NewTuplePattern(lparen token.Token, elements []Child, rparen token.Token) *Node {
	children := make([]Child, 0, len(elements)+2)
	children = append(children, TokenChild(lparen))
	children = append(children, elements...)
	children = append(children, TokenChild(rparen))
	return NewNode(KindTuplePattern, children)
}

// NewBinding builds one declaration binding. pattern is an identifier token
// child or a tuple-pattern node child; annotation, assign, init and comma
// are each optional.
func NewBinding(pattern Child, annotation *Node, assign *token.Token, init *Node, comma *token.Token) *Node {
	children := make([]Child, 0, 5)
	children = append(children, pattern)
	if annotation != nil {
		children = append(children, NodeChild(annotation))
	}
	if assign != nil {
		children = append(children, TokenChild(*assign))
	}
	if init != nil {
		children = append(children, NodeChild(init))
	}
	if comma != nil {
		children = append(children, TokenChild(*comma))
	}
	return NewNode(KindBinding, children)
}

// NewVarDecl builds a declaration from its introducer keyword and bindings.
func NewVarDecl(keyword token.Token, bindings ...*Node) *Node {
	children := make([]Child, 0, len(bindings)+1)
	children = append(children, TokenChild(keyword))
	for _, b := range bindings {
		children = append(children, NodeChild(b))
	}
	return NewNode(KindVarDecl, children)
}

// VarDecl is a kind-safe view over a KindVarDecl node.
type VarDecl struct {
	n *Node
}

// AsVarDecl narrows a node to a declaration view.
func AsVarDecl(n *Node) (VarDecl, bool) {
	if n == nil || n.Kind() != KindVarDecl {
		return VarDecl{}, false
	}
	return VarDecl{n: n}, true
}

// Node returns the underlying node.
func (d VarDecl) Node() *Node { return d.n }

// Keyword returns the introducer keyword token ('let' or 'var').
func (d VarDecl) Keyword() token.Token {
	return *d.n.Child(0).Tok
}

// BindingCount returns the number of bindings the declaration introduces.
func (d VarDecl) BindingCount() int {
	count := 0
	for _, c := range d.n.Children() {
		if c.IsNode() && c.Node.Kind() == KindBinding {
			count++
		}
	}
	return count
}

// Bindings returns the declaration's bindings in source order.
func (d VarDecl) Bindings() []Binding {
	out := make([]Binding, 0, d.n.NumChildren()-1)
	for _, c := range d.n.Children() {
		if c.IsNode() && c.Node.Kind() == KindBinding {
			out = append(out, Binding{n: c.Node})
		}
	}
	return out
}

// Binding is a kind-safe view over a KindBinding node. Accessors identify
// parts by kind rather than position, so optional parts may be absent.
type Binding struct {
	n *Node
}

// AsBinding narrows a node to a binding view.
func AsBinding(n *Node) (Binding, bool) {
	if n == nil || n.Kind() != KindBinding {
		return Binding{}, false
	}
	return Binding{n: n}, true
}

// Node returns the underlying node.
func (b Binding) Node() *Node { return b.n }

// Pattern returns the bound pattern: an identifier token child or a
// tuple-pattern node child.
func (b Binding) Pattern() Child {
	return b.n.Child(0)
}

// Annotation returns the binding's type annotation node, or nil.
func (b Binding) Annotation() *Node {
	for _, c := range b.n.Children() {
		if c.IsNode() && c.Node.Kind() == KindTypeAnnotation {
			return c.Node
		}
	}
	return nil
}

// AssignToken returns the '=' token, or nil when there is no initializer.
func (b Binding) AssignToken() *token.Token {
	for _, c := range b.n.Children() {
		if c.IsToken() && c.Tok.Kind == token.Assign {
			return c.Tok
		}
	}
	return nil
}

// Initializer returns the initializer expression node, or nil.
func (b Binding) Initializer() *Node {
	for _, c := range b.n.Children() {
		if c.IsNode() && c.Node.Kind() == KindExpr {
			return c.Node
		}
	}
	return nil
}

// Comma returns the trailing separator token, or nil. Only non-final
// bindings of a multi-binding declaration carry one.
func (b Binding) Comma() *token.Token {
	for _, c := range b.n.Children() {
		if c.IsToken() && c.Tok.Kind == token.Comma {
			return c.Tok
		}
	}
	return nil
}

// Rebuild returns a new binding node with the given optional parts, keeping
// the receiver's pattern. Passing the receiver's own parts shares them.
func (b Binding) Rebuild(annotation *Node, assign *token.Token, init *Node, comma *token.Token) *Node {
	return NewBinding(b.Pattern(), annotation, assign, init, comma)
}
