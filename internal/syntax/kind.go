package syntax

// NodeKind tags the grammatical role of a node.
type NodeKind uint8

const (
	// KindFile is the top-level node: its children are statements.
	KindFile NodeKind = iota
	// KindBlock is a braced statement sequence: '{' stmts '}'.
	KindBlock
	// KindFuncLit is an anonymous function: 'fn' '(' params ')' block.
	KindFuncLit
	// KindVarDecl is a 'let'/'var' declaration with one or more bindings.
	KindVarDecl
	// KindBinding is one pattern with optional annotation, initializer and
	// trailing comma inside a declaration.
	KindBinding
	// KindTypeAnnotation is ':' followed by a type expression.
	KindTypeAnnotation
	// KindTuplePattern is a destructuring pattern: '(' elements ')'.
	KindTuplePattern
	// KindExpr is an opaque expression: an ordered run of tokens and nodes
	// the rewrite engine never looks inside.
	KindExpr
)

var nodeKindNames = [...]string{
	KindFile:           "File",
	KindBlock:          "Block",
	KindFuncLit:        "FuncLit",
	KindVarDecl:        "VarDecl",
	KindBinding:        "Binding",
	KindTypeAnnotation: "TypeAnnotation",
	KindTuplePattern:   "TuplePattern",
	KindExpr:           "Expr",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// IsValid reports whether k is a known node kind.
func (k NodeKind) IsValid() bool {
	return int(k) < len(nodeKindNames)
}
