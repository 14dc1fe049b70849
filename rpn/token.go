package rpn

const (
	TokenTypeValue TokenType = iota
	TokenTypeMalformed
	TokenTypeOperator
	TokenTypeUnary
	TokenTypeVariadic
	TokenTypeIdentifier
)

var TokenMapping = map[TokenType]string{
	TokenTypeValue:      "<value>",
	TokenTypeMalformed:  "<malformed>",
	TokenTypeOperator:   "<operator>",
	TokenTypeUnary:      "<unary>",
	TokenTypeVariadic:   "<variadic>",
	TokenTypeIdentifier: "<identifier>",
}

type TokenType int

func (t TokenType) String() string {
	return TokenMapping[t]
}

type Token struct {
	TokenType TokenType
	StringVal string
	FloatVal  float64
}

type TokenList []Token

func (in TokenList) at(index int) *Token {
	if index < len(in) {
		return &in[index]
	}
	return nil
}

// Strings returns the raw text of every token in order.
func (in TokenList) Strings() []string {
	out := make([]string, 0, len(in))
	for _, token := range in {
		out = append(out, token.StringVal)
	}
	return out
}
