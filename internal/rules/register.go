package rules

import (
	"reshape/internal/diag"
	"reshape/internal/rewrite"
	"reshape/internal/rules/declsplit"
)

func init() {
	Register(declsplit.Name, func(sev diag.Severity) rewrite.Rule {
		return declsplit.NewWithSeverity(sev)
	})
}
