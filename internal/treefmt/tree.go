// Package treefmt renders syntax trees and diagnostics for the CLI.
// It is pure presentation: no filtering, no tree inspection logic beyond
// what display requires.
package treefmt

import (
	"encoding/json"
	"fmt"
	"io"

	"reshape/internal/syntax"
	"reshape/internal/token"
)

// TreePretty writes a box-drawing dump of the tree.
func TreePretty(w io.Writer, n *syntax.Node) error {
	if n == nil {
		return fmt.Errorf("treefmt: nil node")
	}
	if _, err := fmt.Fprintf(w, "%s\n", n.Kind()); err != nil {
		return err
	}
	return writeChildren(w, n, "")
}

func writeChildren(w io.Writer, n *syntax.Node, prefix string) error {
	children := n.Children()
	for i, c := range children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		switch {
		case c.IsToken():
			if _, err := fmt.Fprintf(w, "%s%s%s %q\n", prefix, connector, c.Tok.Kind, c.Tok.Text); err != nil {
				return err
			}
		case c.IsNode():
			if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, c.Node.Kind()); err != nil {
				return err
			}
			if err := writeChildren(w, c.Node, childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

// TreeNodeOutput is the JSON shape of one tree element.
type TreeNodeOutput struct {
	Type     string           `json:"type"`
	Kind     string           `json:"kind"`
	Text     string           `json:"text,omitempty"`
	Leading  string           `json:"leading,omitempty"`
	Trailing string           `json:"trailing,omitempty"`
	Children []TreeNodeOutput `json:"children,omitempty"`
}

// TreeJSON writes the tree as indented JSON.
func TreeJSON(w io.Writer, n *syntax.Node) error {
	if n == nil {
		return fmt.Errorf("treefmt: nil node")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(nodeOutput(n))
}

func nodeOutput(n *syntax.Node) TreeNodeOutput {
	out := TreeNodeOutput{Type: "node", Kind: n.Kind().String()}
	for _, c := range n.Children() {
		switch {
		case c.IsToken():
			tok := c.Tok
			out.Children = append(out.Children, TreeNodeOutput{
				Type:     "token",
				Kind:     tok.Kind.String(),
				Text:     tok.Text,
				Leading:  token.RenderTrivia(tok.Leading),
				Trailing: token.RenderTrivia(tok.Trailing),
			})
		case c.IsNode():
			out.Children = append(out.Children, nodeOutput(c.Node))
		}
	}
	return out
}
