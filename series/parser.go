package series

import (
	"fmt"

	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
)

// Parser turns selector tokens into a time series without samples:
//
//	<metric>
//	<metric>{}
//	<metric>{<label>="<value>", ...}
type Parser struct {
	index  int
	tokens TokenList
}

func NewParser(tokens TokenList) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the token under the cursor, or an end marker.
func (p *Parser) current() Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	column := 0
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		column = last.Column + len([]rune(last.StringVal))
	}
	return Token{TokenType: TokenTypeEnd, Column: column}
}

// accept advances past the current token when it has type t.
func (p *Parser) accept(t TokenType) bool {
	if p.current().TokenType != t {
		return false
	}
	p.index++
	return true
}

func (p *Parser) expect(t TokenType) (Token, error) {
	token := p.current()
	if token.TokenType != t {
		got := token.StringVal
		if token.TokenType == TokenTypeEnd {
			got = "end of selector"
		}
		return token, fmt.Errorf("expected %v but got %v at column %v", t, got, token.Column)
	}
	p.index++
	return token, nil
}

func (p *Parser) label() (*prometheus.Label, error) {
	name, err := p.expect(TokenTypeName)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(TokenTypeEquals); err != nil {
		return nil, err
	}
	if _, err = p.expect(TokenTypeQuote); err != nil {
		return nil, err
	}

	label := &prometheus.Label{Name: name.StringVal}
	// an empty value is two quotes in a row
	if value := p.current(); value.TokenType == TokenTypeName {
		label.Value = value.StringVal
		p.index++
	}

	if _, err = p.expect(TokenTypeQuote); err != nil {
		return nil, err
	}
	return label, nil
}

func (p *Parser) Parse() (*prometheus.TimeSeries, error) {
	metric, err := p.expect(TokenTypeName)
	if err != nil {
		return nil, err
	}

	labels := []*prometheus.Label{{
		Name:  "__name__",
		Value: metric.StringVal,
	}}

	if p.accept(TokenTypeLBrace) {
		for !p.accept(TokenTypeRBrace) {
			label, err := p.label()
			if err != nil {
				return nil, err
			}
			labels = append(labels, label)

			if p.accept(TokenTypeComma) {
				continue
			}
			if _, err := p.expect(TokenTypeRBrace); err != nil {
				return nil, err
			}
			break
		}
	}

	if _, err := p.expect(TokenTypeEnd); err != nil {
		return nil, err
	}

	return &prometheus.TimeSeries{
		Labels: labels,
	}, nil
}

// ParseSelector scans and parses a selector in one step.
func ParseSelector(selector string) (*prometheus.TimeSeries, error) {
	tokens, err := NewScanner().Scan(selector)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}
