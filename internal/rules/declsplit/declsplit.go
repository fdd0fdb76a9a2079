// Package declsplit splits a declaration that binds several variables into
// one single-binding declaration per line.
//
//	var a, b: Int        =>      var a: Int
//	                             var b: Int
//
// A type annotation written once on the last binding applies to all of them,
// so every split declaration receives it. Tuple-destructuring declarations
// like `let (x, y) = pair` are a single binding and are never touched.
package declsplit

import (
	"reshape/internal/diag"
	"reshape/internal/rewrite"
	"reshape/internal/syntax"
	"reshape/internal/token"
)

// Name is the rule's registry name.
const Name = "declsplit"

const message = "split variable binding into multiple declarations"

// Rule implements rewrite.Rule.
type Rule struct {
	severity diag.Severity
}

// New returns the rule at its default warning severity.
func New() *Rule {
	return &Rule{severity: diag.SevWarning}
}

// NewWithSeverity returns the rule reporting at the given severity.
func NewWithSeverity(sev diag.Severity) *Rule {
	return &Rule{severity: sev}
}

// Name implements rewrite.Rule.
func (r *Rule) Name() string { return Name }

// ProcessStatements implements rewrite.Rule. The first pass over the
// sequence only scans; nothing is allocated until a qualifying declaration
// is found, so already-split output passes through untouched and the rule
// is idempotent.
func (r *Rule) ProcessStatements(ctx *rewrite.Context, stmts []syntax.Child) ([]syntax.Child, bool) {
	found := false
	for _, c := range stmts {
		if _, ok := splittable(c); ok {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	out := make([]syntax.Child, 0, len(stmts)+1)
	for _, c := range stmts {
		decl, ok := splittable(c)
		if !ok {
			out = append(out, c)
			continue
		}
		ctx.Report(r.severity, diag.RuleSplitVarDecl, message, decl.Node())
		out = append(out, split(decl)...)
	}
	return out, true
}

func splittable(c syntax.Child) (syntax.VarDecl, bool) {
	if !c.IsNode() {
		return syntax.VarDecl{}, false
	}
	decl, ok := syntax.AsVarDecl(c.Node)
	if !ok {
		return syntax.VarDecl{}, false
	}
	count := decl.BindingCount()
	if count == 0 {
		// Upstream parser contract violation; the split's trivia handling
		// is undefined for this shape, so fail fast instead of guessing.
		panic("declsplit: declaration with zero bindings")
	}
	return decl, count > 1
}

// split turns one multi-binding declaration into one declaration per
// binding, in original order. The k-th binding keeps its own annotation and
// initializer; a binding without an annotation receives the declaration's
// inherited one. Trailing commas never survive the split.
func split(decl syntax.VarDecl) []syntax.Child {
	bindings := decl.Bindings()
	if len(bindings) == 0 {
		panic("declsplit: declaration with zero bindings")
	}

	// The grammar only permits the annotation on the last binding, but the
	// invariant is not load-bearing here: the last non-nil annotation wins.
	var inherited *syntax.Node
	for _, b := range bindings {
		if a := b.Annotation(); a != nil {
			inherited = a
		}
	}

	keyword := decl.Keyword()
	out := make([]syntax.Child, 0, len(bindings))
	for i, b := range bindings {
		annotation := b.Annotation()
		if annotation == nil {
			annotation = inherited
		}
		binding := b.Rebuild(annotation, b.AssignToken(), b.Initializer(), nil)

		kw := keyword
		if i > 0 {
			// The binding moves to the start of its own line: exactly one
			// synthesized newline, then whatever non-newline trivia
			// (indentation, comments) the binding carried.
			moved := token.StripNewlines(b.Node().LeadingTrivia())
			lead := make([]token.Trivia, 0, len(moved)+1)
			lead = append(lead, token.Newlines(1))
			lead = append(lead, moved...)
			kw = keyword.WithLeading(lead)
			binding = binding.WithLeadingTrivia(nil)
		}
		out = append(out, syntax.NodeChild(syntax.NewVarDecl(kw, binding)))
	}
	return out
}
