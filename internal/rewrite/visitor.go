package rewrite

import "reshape/internal/syntax"

// Rewrite walks the tree depth-first and rebuilds it bottom-up, handing
// every statement sequence to the rule. It returns the original root
// pointer when no rewrite fired anywhere beneath it, so callers can detect
// "no change" with a pointer comparison.
func Rewrite(root *syntax.Node, rule Rule, ctx *Context) *syntax.Node {
	if root == nil {
		return nil
	}
	return rewriteNode(root, rule, ctx)
}

func rewriteNode(n *syntax.Node, rule Rule, ctx *Context) *syntax.Node {
	children := n.Children()

	// Children first: post-order, so nested sequences (blocks inside
	// function literals inside this node) are already rewritten by the
	// time this node's own sequence is processed.
	var rebuilt []syntax.Child
	for i, c := range children {
		if !c.IsNode() {
			continue
		}
		replaced := rewriteNode(c.Node, rule, ctx)
		if replaced == c.Node {
			continue
		}
		if rebuilt == nil {
			rebuilt = make([]syntax.Child, len(children))
			copy(rebuilt, children)
		}
		rebuilt[i] = syntax.NodeChild(replaced)
	}

	current := children
	if rebuilt != nil {
		current = rebuilt
	}

	if start, end, ok := n.StatementRange(); ok {
		if repl, changed := rule.ProcessStatements(ctx, current[start:end]); changed {
			out := make([]syntax.Child, 0, start+len(repl)+len(current)-end)
			out = append(out, current[:start]...)
			out = append(out, repl...)
			out = append(out, current[end:]...)
			return n.WithChildren(out)
		}
	}

	if rebuilt == nil {
		return n
	}
	return n.WithChildren(rebuilt)
}
