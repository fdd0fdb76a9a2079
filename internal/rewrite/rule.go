package rewrite

import (
	"reshape/internal/diag"
	"reshape/internal/syntax"
)

// Rule is one local rewrite over statement sequences. The visitor hands the
// rule every statement sequence in the tree (file bodies, block bodies,
// which includes anonymous-function bodies); the rule either declines with
// ok=false — the required fast path, no allocation — or returns the
// replacement sequence.
//
// Implementations must treat the input slice as read only and must be pure:
// the only permitted side effect is reporting through the Context.
type Rule interface {
	// Name returns the rule's stable registry name.
	Name() string
	// ProcessStatements inspects one statement sequence and returns its
	// replacement. ok=false means "no change"; the sequence is kept as is.
	ProcessStatements(ctx *Context, stmts []syntax.Child) (out []syntax.Child, ok bool)
}

// Context carries the per-run diagnostic sink. One Context (and one Bag)
// per traversal; contexts are not shared across concurrent runs.
type Context struct {
	bag *diag.Bag
}

// NewContext wraps a caller-owned sink.
func NewContext(bag *diag.Bag) *Context {
	return &Context{bag: bag}
}

// Bag returns the sink diagnostics accumulate into.
func (c *Context) Bag() *diag.Bag {
	return c.bag
}

// Report records one finding anchored at the given node.
func (c *Context) Report(sev diag.Severity, code diag.Code, msg string, anchor *syntax.Node) {
	c.bag.Add(diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Anchor:   anchor,
	})
}
