package diag

import "reshape/internal/syntax"

// Diagnostic is one advisory finding produced by a rewrite rule. It is
// created once and never mutated. Anchor points at the original node the
// finding concerns, which stays valid after a rewrite because trees are
// persistent.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Anchor   *syntax.Node
}
