package evals

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/lox/tokens"
	"github.com/reusee/lox/values"
)

var (
	ErrRuntime                  = errors.New("runtime error")
	ErrOperandNumber            = fmt.Errorf("%w: operand must be a number", ErrRuntime)
	ErrOperandsNumbers          = fmt.Errorf("%w: operands must be numbers", ErrRuntime)
	ErrOperandsNumbersOrStrings = fmt.Errorf("%w: operands must be two numbers or two strings", ErrRuntime)
	ErrTooDeep                  = fmt.Errorf("%w: expression nested too deeply", ErrRuntime)
)

// Error carries the operator and the operand values it was applied to.
type Error struct {
	Err      error
	Op       string
	Pos      tokens.Pos
	Operands []values.Value
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Err.Error(), e.Pos, e.Message())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Where() string {
	if e.Op == "" {
		return ""
	}
	return fmt.Sprintf(" at '%s'", e.Op)
}

func (e *Error) Message() string {
	var b strings.Builder
	switch {
	case errors.Is(e.Err, ErrOperandNumber):
		b.WriteString("Operand must be a number")
	case errors.Is(e.Err, ErrOperandsNumbers):
		b.WriteString("Operands must be numbers")
	case errors.Is(e.Err, ErrOperandsNumbersOrStrings):
		b.WriteString("Operands must be two numbers or two strings")
	case errors.Is(e.Err, ErrTooDeep):
		b.WriteString("Expression nested too deeply")
	default:
		b.WriteString(e.Err.Error())
	}
	for i, operand := range e.Operands {
		if i == 0 {
			b.WriteString(", got ")
		} else {
			b.WriteString(" and ")
		}
		b.WriteString(describe(operand))
	}
	b.WriteString(".")
	return b.String()
}

func describe(v values.Value) string {
	switch v := v.(type) {
	case values.String:
		return fmt.Sprintf("string %q", string(v))
	case values.Nil:
		return "nil"
	}
	return v.Kind() + " " + v.String()
}
