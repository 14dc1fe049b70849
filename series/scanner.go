package series

import (
	"errors"
	"strings"
	"unicode"
)

// Scanner tokenizes a series selector such as rpncalc_result{source="repl"}.
type Scanner struct {
}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (*Scanner) Scan(data string) (TokenList, error) {
	var tokens TokenList
	runes := []rune(data)
	index := 0
	quoted := false

	next := func() rune {
		current := runes[index]
		index = index + 1
		return current
	}

	peek := func() rune {
		return runes[index]
	}

	name := func(t rune, column int) Token {
		sb := strings.Builder{}
		sb.WriteRune(t)
		for index < len(runes) {
			r := peek()
			if quoted {
				if r == '"' {
					break
				}
			} else if r == '{' || r == '}' || r == '=' || r == ',' || r == '"' || unicode.IsSpace(r) {
				break
			}
			sb.WriteRune(next())
		}

		return Token{
			TokenType: TokenTypeName,
			StringVal: sb.String(),
			Column:    column,
		}
	}

	simple := func(t TokenType, column int) {
		tokens = append(tokens, Token{
			TokenType: t,
			StringVal: t.String(),
			Column:    column,
		})
	}

	for index < len(runes) {
		column := index
		r := next()

		// whitespace only matters inside label values
		if !quoted && unicode.IsSpace(r) {
			continue
		}

		if quoted && r != '"' {
			tokens = append(tokens, name(r, column))
			continue
		}

		switch r {
		case '{':
			simple(TokenTypeLBrace, column)
		case '}':
			simple(TokenTypeRBrace, column)
		case '"':
			quoted = !quoted
			simple(TokenTypeQuote, column)
		case '=':
			simple(TokenTypeEquals, column)
		case ',':
			simple(TokenTypeComma, column)
		default:
			tokens = append(tokens, name(r, column))
		}
	}

	if quoted {
		return nil, errors.New("unterminated label value")
	}
	return tokens, nil
}
