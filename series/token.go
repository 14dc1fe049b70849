package series

type TokenType int

const (
	TokenTypeLBrace TokenType = iota
	TokenTypeRBrace
	TokenTypeQuote
	TokenTypeName
	TokenTypeEquals
	TokenTypeComma
	// TokenTypeEnd is never scanned; the parser reports it past the last token.
	TokenTypeEnd
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeLBrace:
		return "{"
	case TokenTypeRBrace:
		return "}"
	case TokenTypeQuote:
		return "\""
	case TokenTypeName:
		return "<name>"
	case TokenTypeEquals:
		return "="
	case TokenTypeComma:
		return ","
	default:
		return "<end>"
	}
}

// Token is a selector fragment; Column is the rune offset it starts at.
type Token struct {
	TokenType TokenType
	StringVal string
	Column    int
}

type TokenList []Token
