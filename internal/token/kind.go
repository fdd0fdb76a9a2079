package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Ident represents an identifier token.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwReturn represents the 'return' keyword.
	KwReturn // return

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit
	// BoolLit represents a boolean literal.
	BoolLit

	// Colon represents ':'.
	Colon // :
	// Comma represents ','.
	Comma // ,
	// Assign represents '='.
	Assign // =
	// Semicolon represents ';'.
	Semicolon // ;
	// Dot represents '.'.
	Dot // .
	// Arrow represents '->'.
	Arrow // ->
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	Ident:     "Ident",
	KwLet:     "KwLet",
	KwVar:     "KwVar",
	KwFn:      "KwFn",
	KwMut:     "KwMut",
	KwReturn:  "KwReturn",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	BoolLit:   "BoolLit",
	Colon:     "Colon",
	Comma:     "Comma",
	Assign:    "Assign",
	Semicolon: "Semicolon",
	Dot:       "Dot",
	Arrow:     "Arrow",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsValid reports whether k is a known token kind.
func (k Kind) IsValid() bool {
	return k != Invalid && int(k) < len(kindNames) && kindNames[k] != ""
}

// IsKeyword reports whether the kind is a language keyword.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwLet, KwVar, KwFn, KwMut, KwReturn:
		return true
	default:
		return false
	}
}

// IsDeclIntroducer reports whether the kind introduces a variable declaration.
func (k Kind) IsDeclIntroducer() bool {
	return k == KwLet || k == KwVar
}
