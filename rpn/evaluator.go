package rpn

import (
	"math"
)

// Evaluator runs token lists against the symbols and functions it was built with.
type Evaluator struct {
	symbols   *SymbolTable
	functions *FunctionTable
}

func NewEvaluator(symbols *SymbolTable, functions *FunctionTable) *Evaluator {
	return &Evaluator{
		symbols:   symbols,
		functions: functions,
	}
}

// stack lives for a single Evaluate call
type stack []float64

func (s *stack) push(v float64) {
	*s = append(*s, v)
}

func (s *stack) pop() float64 {
	last := len(*s) - 1
	v := (*s)[last]
	*s = (*s)[:last]
	return v
}

// drain empties the stack and returns its values bottom first.
func (s *stack) drain() []float64 {
	values := *s
	*s = nil
	return values
}

func binary(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	default:
		return a / b
	}
}

func unary(fn string, x float64) float64 {
	switch fn {
	case "sin":
		return math.Sin(x)
	case "cos":
		return math.Cos(x)
	default:
		return math.Log(x)
	}
}

func reduce(fn string, values []float64) float64 {
	// top of stack first, matching pop order
	result := values[len(values)-1]
	for i := len(values) - 2; i >= 0; i-- {
		if fn == "max" && result < values[i] {
			result = values[i]
		} else if fn == "min" && values[i] < result {
			result = values[i]
		}
	}
	return result
}

// Evaluate consumes tokens left to right on a fresh stack. The stack must hold
// exactly one value at the end.
func (e *Evaluator) Evaluate(tokens TokenList) (float64, error) {
	var s stack

	for _, token := range tokens {
		switch token.TokenType {
		case TokenTypeValue:
			s.push(token.FloatVal)
		case TokenTypeMalformed:
			return 0, &MalformedLiteralError{Token: token.StringVal}
		case TokenTypeOperator:
			if len(s) < 2 {
				return 0, &StackUnderflowError{Operator: token.StringVal}
			}
			b := s.pop()
			a := s.pop()
			s.push(binary(token.StringVal, a, b))
		case TokenTypeUnary:
			if len(s) == 0 {
				return 0, &ArityError{Function: token.StringVal, Required: 1}
			}
			s.push(unary(token.StringVal, s.pop()))
		case TokenTypeVariadic:
			if len(s) < 2 {
				return 0, &ArityError{Function: token.StringVal, Required: 2}
			}
			s.push(reduce(token.StringVal, s.drain()))
		default:
			if err := e.resolve(&s, token.StringVal); err != nil {
				return 0, err
			}
		}
	}

	if len(s) != 1 {
		return 0, ErrInvalidExpression
	}
	return s.pop(), nil
}

// resolve pushes a symbol's value, or calls a user function with the whole
// stack as its arguments.
func (e *Evaluator) resolve(s *stack, name string) error {
	if value, ok := e.symbols.Lookup(name); ok {
		s.push(value)
		return nil
	}

	fn, ok := e.functions.Lookup(name)
	if !ok {
		return &UnknownTokenError{Token: name}
	}
	result, err := fn(s.drain())
	if err != nil {
		return &FunctionError{Function: name, Err: err}
	}
	s.push(result)
	return nil
}
