package diag

import "fmt"

// Code is a compact, stable identifier for a diagnostic message kind.
// Rewrite rules occupy the 1000 range.
type Code uint16

const (
	// UnknownCode is the zero value; never emitted by rules.
	UnknownCode Code = 0

	// RuleSplitVarDecl fires when a declaration binds several variables and
	// is split into one declaration per binding.
	RuleSplitVarDecl Code = 1001
)

// ID returns the stable external form of the code, e.g. "RS1001".
func (c Code) ID() string {
	return fmt.Sprintf("RS%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
