package rpn

import (
	"strconv"
	"strings"
)

type Scanner struct {
}

func NewScanner() *Scanner {
	return &Scanner{}
}

// LooksNumeric reports whether s has the shape of a numeric literal: a leading
// decimal digit, or a leading '-' followed by anything.
func LooksNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return true
	}
	return s[0] == '-' && len(s) > 1
}

// isSpace matches the C locale whitespace set; other Unicode spaces are part
// of a word.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func classify(word string) Token {
	if LooksNumeric(word) {
		f, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return Token{
				TokenType: TokenTypeMalformed,
				StringVal: word,
			}
		}
		return Token{
			TokenType: TokenTypeValue,
			StringVal: word,
			FloatVal:  f,
		}
	}

	tokenType := TokenTypeIdentifier
	switch word {
	case "+", "-", "*", "/":
		tokenType = TokenTypeOperator
	case "sin", "cos", "log":
		tokenType = TokenTypeUnary
	case "max", "min":
		tokenType = TokenTypeVariadic
	}
	return Token{
		TokenType: tokenType,
		StringVal: word,
	}
}

// Scan splits data on runs of whitespace and classifies every fragment.
// It never fails: unparsable literals become TokenTypeMalformed and are
// reported by the evaluator when reached.
func (*Scanner) Scan(data string) TokenList {
	var tokens TokenList
	current := strings.Builder{}

	consume := func() {
		if current.Len() == 0 {
			return
		}
		tokens = append(tokens, classify(current.String()))
		current.Reset()
	}

	for _, r := range data {
		// whitespace terminates the current word
		if isSpace(r) {
			consume()
			continue
		}
		current.WriteRune(r)
	}
	consume()

	return tokens
}
