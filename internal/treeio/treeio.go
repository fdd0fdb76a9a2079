// Package treeio serializes syntax trees across the parser process
// boundary. External front ends parse source text and hand trees to the
// engine as schema-versioned msgpack payloads; the engine never re-parses.
package treeio

import (
	"errors"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"reshape/internal/syntax"
	"reshape/internal/token"
)

// FileExt is the on-disk extension for serialized trees.
const FileExt = ".rtree"

// Current schema version - increment when the record format changes.
const schemaVersion uint16 = 1

// ErrSchemaMismatch is returned when a payload was written by an
// incompatible schema version.
var ErrSchemaMismatch = errors.New("treeio: incompatible schema version")

type triviaRec struct {
	Kind  uint8
	Count uint32
	Text  string
}

type tokenRec struct {
	Kind     uint8
	Text     string
	Leading  []triviaRec
	Trailing []triviaRec
}

type childRec struct {
	Token *tokenRec
	Node  *nodeRec
}

type nodeRec struct {
	Kind     uint8
	Children []childRec
}

type payload struct {
	Schema uint16
	Root   *nodeRec
}

// Encode serializes a tree.
func Encode(root *syntax.Node) ([]byte, error) {
	if root == nil {
		return nil, errors.New("treeio: nil root")
	}
	rec, err := encodeNode(root)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(payload{Schema: schemaVersion, Root: rec})
}

// Decode deserializes a tree, validating the schema version and every node
// and token kind.
func Decode(data []byte) (*syntax.Node, error) {
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("treeio: corrupt payload: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, p.Schema, schemaVersion)
	}
	if p.Root == nil {
		return nil, errors.New("treeio: payload has no root node")
	}
	return decodeNode(p.Root)
}

// Load reads and decodes a tree file.
func Load(path string) (*syntax.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treeio: read %s: %w", path, err)
	}
	root, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Save encodes and writes a tree file.
func Save(path string, root *syntax.Node) error {
	data, err := Encode(root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("treeio: write %s: %w", path, err)
	}
	return nil
}

func encodeNode(n *syntax.Node) (*nodeRec, error) {
	rec := &nodeRec{Kind: uint8(n.Kind())}
	if n.NumChildren() == 0 {
		return rec, nil
	}
	rec.Children = make([]childRec, 0, n.NumChildren())
	for _, c := range n.Children() {
		switch {
		case c.IsToken():
			tok, err := encodeToken(*c.Tok)
			if err != nil {
				return nil, err
			}
			rec.Children = append(rec.Children, childRec{Token: tok})
		case c.IsNode():
			sub, err := encodeNode(c.Node)
			if err != nil {
				return nil, err
			}
			rec.Children = append(rec.Children, childRec{Node: sub})
		default:
			return nil, errors.New("treeio: empty child slot")
		}
	}
	return rec, nil
}

func encodeToken(t token.Token) (*tokenRec, error) {
	leading, err := encodeTrivia(t.Leading)
	if err != nil {
		return nil, err
	}
	trailing, err := encodeTrivia(t.Trailing)
	if err != nil {
		return nil, err
	}
	return &tokenRec{
		Kind:     uint8(t.Kind),
		Text:     t.Text,
		Leading:  leading,
		Trailing: trailing,
	}, nil
}

func encodeTrivia(tv []token.Trivia) ([]triviaRec, error) {
	if len(tv) == 0 {
		return nil, nil
	}
	out := make([]triviaRec, 0, len(tv))
	for _, t := range tv {
		count, err := safecast.Conv[uint32](t.Count)
		if err != nil {
			return nil, fmt.Errorf("treeio: trivia count overflow: %w", err)
		}
		out = append(out, triviaRec{Kind: uint8(t.Kind), Count: count, Text: t.Text})
	}
	return out, nil
}

func decodeNode(rec *nodeRec) (*syntax.Node, error) {
	kind := syntax.NodeKind(rec.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("treeio: unknown node kind %d", rec.Kind)
	}
	var children []syntax.Child
	if len(rec.Children) > 0 {
		children = make([]syntax.Child, 0, len(rec.Children))
		for _, c := range rec.Children {
			switch {
			case c.Token != nil:
				tok, err := decodeToken(c.Token)
				if err != nil {
					return nil, err
				}
				children = append(children, syntax.TokenChild(tok))
			case c.Node != nil:
				sub, err := decodeNode(c.Node)
				if err != nil {
					return nil, err
				}
				children = append(children, syntax.NodeChild(sub))
			default:
				return nil, errors.New("treeio: child record holds neither token nor node")
			}
		}
	}
	return syntax.NewNode(kind, children), nil
}

func decodeToken(rec *tokenRec) (token.Token, error) {
	kind := token.Kind(rec.Kind)
	if !kind.IsValid() {
		return token.Token{}, fmt.Errorf("treeio: unknown token kind %d", rec.Kind)
	}
	leading, err := decodeTrivia(rec.Leading)
	if err != nil {
		return token.Token{}, err
	}
	trailing, err := decodeTrivia(rec.Trailing)
	if err != nil {
		return token.Token{}, err
	}
	return token.New(kind, rec.Text).WithLeading(leading).WithTrailing(trailing), nil
}

func decodeTrivia(recs []triviaRec) ([]token.Trivia, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	out := make([]token.Trivia, 0, len(recs))
	for _, r := range recs {
		kind := token.TriviaKind(r.Kind)
		if !kind.IsValid() {
			return nil, fmt.Errorf("treeio: unknown trivia kind %d", r.Kind)
		}
		count, err := safecast.Conv[int](r.Count)
		if err != nil {
			return nil, fmt.Errorf("treeio: trivia count overflow: %w", err)
		}
		out = append(out, token.Trivia{Kind: kind, Count: count, Text: r.Text})
	}
	return out, nil
}
