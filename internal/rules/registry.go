// Package rules manages registration of rewrite rules.
package rules

import (
	"fmt"
	"sort"

	"reshape/internal/diag"
	"reshape/internal/rewrite"
)

// Factory builds a rule instance reporting at the given severity.
type Factory func(sev diag.Severity) rewrite.Rule

// DefaultSeverity is used when configuration does not set one.
const DefaultSeverity = diag.SevWarning

var registry = map[string]Factory{}

// Register adds a rule factory under its stable name. Registering the same
// name twice is a programming error.
func Register(name string, f Factory) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("rules: duplicate registration of %q", name))
	}
	registry[name] = f
}

// Lookup returns the factory for a rule name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns all registered rule names, sorted for deterministic
// execution order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
