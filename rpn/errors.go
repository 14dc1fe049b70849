package rpn

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is returned when the stack does not reduce to exactly
// one value.
var ErrInvalidExpression = errors.New("invalid expression")

type ArityError struct {
	Function string
	Required int
}

func (e *ArityError) Error() string {
	if e.Required == 1 {
		return fmt.Sprintf("function '%v' requires at least one argument", e.Function)
	}
	return fmt.Sprintf("function '%v' requires at least %v arguments", e.Function, e.Required)
}

type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token: %v", e.Token)
}

type StackUnderflowError struct {
	Operator string
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("operator '%v' requires two operands", e.Operator)
}

type MalformedLiteralError struct {
	Token string
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("malformed numeric literal: %v", e.Token)
}

// FunctionError wraps a failure raised by a user function.
type FunctionError struct {
	Function string
	Err      error
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("function '%v' failed: %v", e.Function, e.Err)
}

func (e *FunctionError) Unwrap() error {
	return e.Err
}

type AssignmentFormatError struct {
	Line string
}

func (e *AssignmentFormatError) Error() string {
	return fmt.Sprintf("malformed variable assignment: %v", e.Line)
}
