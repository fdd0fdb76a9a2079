package treefmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"reshape/internal/diag"
	"reshape/internal/syntax"
	"reshape/internal/testkit"
	"reshape/internal/treefmt"
)

func TestTreePretty(t *testing.T) {
	tree := syntax.NewFile(testkit.Decl("var", testkit.Named("a"), testkit.Typed("b", "Int")))

	var buf bytes.Buffer
	if err := treefmt.TreePretty(&buf, tree); err != nil {
		t.Fatalf("TreePretty: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "File\n") {
		t.Errorf("dump should start with the root kind, got %q", out)
	}
	for _, want := range []string{"VarDecl", "Binding", "TypeAnnotation", `KwVar "var"`} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestTreeJSONShape(t *testing.T) {
	tree := syntax.NewFile(testkit.Decl("let", testkit.Typed("x", "Int")))

	var buf bytes.Buffer
	if err := treefmt.TreeJSON(&buf, tree); err != nil {
		t.Fatalf("TreeJSON: %v", err)
	}

	var out treefmt.TreeNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Type != "node" || out.Kind != "File" {
		t.Fatalf("root = %s/%s, want node/File", out.Type, out.Kind)
	}
	if len(out.Children) != 1 || out.Children[0].Kind != "VarDecl" {
		t.Fatal("missing declaration child")
	}
}

func TestDiagnosticsPretty(t *testing.T) {
	decl := testkit.Decl("var", testkit.Named("a"), testkit.Typed("b", "Int"))
	items := []diag.Diagnostic{{
		Severity: diag.SevWarning,
		Code:     diag.RuleSplitVarDecl,
		Message:  "split variable binding into multiple declarations",
		Anchor:   decl,
	}}

	var buf bytes.Buffer
	if err := treefmt.DiagnosticsPretty(&buf, "main.rtree", items, treefmt.Options{}); err != nil {
		t.Fatalf("DiagnosticsPretty: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "warning[RS1001]: split variable binding into multiple declarations") {
		t.Errorf("missing headline: %q", out)
	}
	if !strings.Contains(out, "main.rtree: var a, b: Int") {
		t.Errorf("missing location and excerpt: %q", out)
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	items := []diag.Diagnostic{
		{Severity: diag.SevError, Code: diag.RuleSplitVarDecl, Message: "m1"},
		{Severity: diag.SevInfo, Code: diag.RuleSplitVarDecl, Message: "m2"},
	}

	var buf bytes.Buffer
	if err := treefmt.DiagnosticsJSON(&buf, "x.rtree", items); err != nil {
		t.Fatalf("DiagnosticsJSON: %v", err)
	}

	var out []treefmt.DiagnosticOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].Severity != "error" || out[1].Severity != "info" {
		t.Fatal("severities wrong or reordered")
	}
	if out[0].Path != "x.rtree" || out[0].Code != "RS1001" {
		t.Fatal("path or code missing")
	}
}
