package diag_test

import (
	"testing"

	"reshape/internal/diag"
)

func TestBagKeepsArrivalOrder(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.RuleSplitVarDecl, Message: "first"})
	bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Code: diag.RuleSplitVarDecl, Message: "second"})
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.RuleSplitVarDecl, Message: "first"})

	if bag.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (no deduplication)", bag.Len())
	}
	items := bag.Items()
	if items[0].Message != "first" || items[1].Message != "second" || items[2].Message != "first" {
		t.Fatal("arrival order not preserved")
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := diag.NewBag(0)
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("empty bag must report no findings")
	}

	bag.Add(diag.Diagnostic{Severity: diag.SevInfo})
	if bag.HasWarnings() {
		t.Fatal("info diagnostic counted as warning")
	}

	bag.Add(diag.Diagnostic{Severity: diag.SevWarning})
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("warning severity misreported")
	}

	bag.Add(diag.Diagnostic{Severity: diag.SevError})
	if !bag.HasErrors() {
		t.Fatal("error severity misreported")
	}
	if got := bag.AtOrAbove(diag.SevWarning); got != 2 {
		t.Fatalf("AtOrAbove(warning) = %d, want 2", got)
	}
}

func TestBagMerge(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.Diagnostic{Message: "a"})
	b := diag.NewBag(1)
	b.Add(diag.Diagnostic{Message: "b"})

	a.Merge(b)
	a.Merge(nil)

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if a.Items()[0].Message != "a" || a.Items()[1].Message != "b" {
		t.Fatal("merge order wrong")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    diag.Severity
		wantErr bool
	}{
		{"info", diag.SevInfo, false},
		{"warning", diag.SevWarning, false},
		{"error", diag.SevError, false},
		{"fatal", diag.SevWarning, true},
		{"", diag.SevWarning, true},
	}
	for _, tt := range tests {
		got, err := diag.ParseSeverity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeverity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCodeID(t *testing.T) {
	if got, want := diag.RuleSplitVarDecl.ID(), "RS1001"; got != want {
		t.Fatalf("ID() = %q, want %q", got, want)
	}
}
