package rpn

// Outcome describes what a line did to the session.
type Outcome struct {
	// Empty is set for lines without tokens; nothing was evaluated.
	Empty bool
	// Assigned is set when the line defined Name as Value; otherwise Value is
	// the evaluation result.
	Assigned bool
	Name     string
	Value    float64
}

// Session owns the symbol and function tables used by consecutive lines.
type Session struct {
	Symbols   *SymbolTable
	Functions *FunctionTable

	scanner   *Scanner
	evaluator *Evaluator
}

func NewSession() *Session {
	symbols := NewSymbolTable()
	functions := NewFunctionTable()
	return &Session{
		Symbols:   symbols,
		Functions: functions,
		scanner:   NewScanner(),
		evaluator: NewEvaluator(symbols, functions),
	}
}

func isAssignment(tokens TokenList) bool {
	if len(tokens) < 3 {
		return false
	}
	return tokens.at(1).StringVal == "="
}

// Eval runs one input line: either "<name> = <number>" or an RPN expression.
// A rejected assignment leaves the previous definition untouched.
func (s *Session) Eval(line string) (Outcome, error) {
	tokens := s.scanner.Scan(line)
	if len(tokens) == 0 {
		return Outcome{Empty: true}, nil
	}

	if isAssignment(tokens) {
		value := tokens.at(2)
		if len(tokens) != 3 || value.TokenType != TokenTypeValue {
			return Outcome{}, &AssignmentFormatError{Line: line}
		}
		name := tokens[0].StringVal
		s.Symbols.Define(name, value.FloatVal)
		return Outcome{
			Assigned: true,
			Name:     name,
			Value:    value.FloatVal,
		}, nil
	}

	result, err := s.evaluator.Evaluate(tokens)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Value: result}, nil
}
