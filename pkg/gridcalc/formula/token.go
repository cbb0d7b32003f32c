package formula

// TokenKind identifies a formula token.
type TokenKind uint8

const (
	// TokenNumber is a numeric literal.
	TokenNumber TokenKind = iota
	// TokenCellRef is an A1-style cell reference.
	TokenCellRef
	// TokenOperator is one of + - * /.
	TokenOperator
	// TokenLParen is a left parenthesis.
	TokenLParen
	// TokenRParen is a right parenthesis.
	TokenRParen
)

// Token is a single lexed formula element.
type Token struct {
	Kind TokenKind
	// Num holds the value for TokenNumber tokens.
	Num float64
	// Text holds the label for TokenCellRef and the symbol for TokenOperator.
	Text string
}

// precedence maps operators to binding strength; * and / bind tighter than
// + and -. All operators are left-associative.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}
