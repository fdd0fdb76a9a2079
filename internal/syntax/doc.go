// Package syntax defines the immutable syntax tree the rewrite engine
// operates on.
//
// Every node is a kind tag plus an ordered sequence of children; a child is
// either a token (with its trivia) or a sub-node. Nodes are persistent:
// building a "modified" node never touches the original, and unchanged
// subtrees are shared by pointer between the old and new roots. Rendering a
// node concatenates trivia and token text, reproducing source bytes exactly.
//
// Typed wrappers (VarDecl, Binding) give kind-safe access to the canonical
// child layouts produced by the New* builders; rules use the wrappers and
// never index raw children directly.
package syntax
