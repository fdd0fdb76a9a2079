package treeio_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"reshape/internal/syntax"
	"reshape/internal/testkit"
	"reshape/internal/token"
	"reshape/internal/treeio"
)

func sampleTree() *syntax.Node {
	decl := testkit.Decl("var", testkit.Named("a"), testkit.Typed("b", "Int")).
		WithLeadingTrivia([]token.Trivia{token.LineComment("// counters"), token.Newlines(1)})
	return syntax.NewFile(
		decl,
		testkit.FuncLit(testkit.Block(testkit.Stmt("use"))),
	)
}

func TestRoundTripPreservesSourceText(t *testing.T) {
	tree := sampleTree()

	data, err := treeio.Encode(tree)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := treeio.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Text() != tree.Text() {
		t.Fatalf("round trip changed source text:\n got %q\nwant %q", got.Text(), tree.Text())
	}
	if err := testkit.CheckTreeInvariants(got); err != nil {
		t.Fatalf("decoded tree violates invariants: %v", err)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample"+treeio.FileExt)
	tree := sampleTree()

	if err := treeio.Save(path, tree); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := treeio.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Text() != tree.Text() {
		t.Fatal("loaded tree differs from saved tree")
	}
}

func TestDecodeRejectsCorruptPayload(t *testing.T) {
	if _, err := treeio.Decode([]byte("not msgpack")); err == nil {
		t.Fatal("expected error for corrupt payload")
	}
}

func TestDecodeRejectsWrongSchema(t *testing.T) {
	data, err := msgpack.Marshal(struct {
		Schema uint16
		Root   any
	}{Schema: 9999, Root: nil})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	_, err = treeio.Decode(data)
	if !errors.Is(err, treeio.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestEncodeNilRoot(t *testing.T) {
	if _, err := treeio.Encode(nil); err == nil {
		t.Fatal("expected error for nil root")
	}
}
