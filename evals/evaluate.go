package evals

import (
	"fmt"

	"github.com/reusee/lox/exprs"
	"github.com/reusee/lox/tokens"
	"github.com/reusee/lox/values"
)

// DefaultMaxDepth bounds recursion. Left-associative chains are folded in a loop,
// so only unary, grouping and right operand nesting counts against it.
const DefaultMaxDepth = 1 << 16

type Option func(*evaluator)

func WithMaxDepth(n int) Option {
	return func(e *evaluator) {
		e.maxDepth = n
	}
}

type evaluator struct {
	depth    int
	maxDepth int
	// innermost operator entered, for positioning depth errors
	pos tokens.Pos
}

// Evaluate computes the value of expr. The tree is never mutated, and the first
// runtime error aborts the whole evaluation.
func Evaluate(expr exprs.Expr, options ...Option) (values.Value, error) {
	e := &evaluator{
		maxDepth: DefaultMaxDepth,
	}
	for _, option := range options {
		option(e)
	}
	return e.eval(expr)
}

func (e *evaluator) eval(expr exprs.Expr) (values.Value, error) {
	outer := e.pos
	e.depth++
	defer func() {
		e.depth--
		e.pos = outer
	}()
	switch expr := expr.(type) {
	case *exprs.Unary:
		e.pos = expr.Op.Pos
	case *exprs.Binary:
		e.pos = expr.Op.Pos
	}
	if e.maxDepth > 0 && e.depth > e.maxDepth {
		return nil, &Error{
			Err: ErrTooDeep,
			Pos: e.pos,
		}
	}

	switch expr := expr.(type) {

	case *exprs.Literal:
		return expr.Value, nil

	case *exprs.Grouping:
		return e.eval(expr.Inner)

	case *exprs.Unary:
		return e.unary(expr)

	case *exprs.Binary:
		return e.binary(expr)

	}
	panic(fmt.Errorf("unknown expression: %T", expr))
}

func (e *evaluator) unary(expr *exprs.Unary) (values.Value, error) {
	operand, err := e.eval(expr.Operand)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {

	case exprs.Not:
		return values.Boolean(!values.Truthy(operand)), nil

	case exprs.Negate:
		n, ok := operand.(values.Number)
		if !ok {
			return nil, &Error{
				Err:      ErrOperandNumber,
				Op:       expr.Op.Kind.String(),
				Pos:      expr.Op.Pos,
				Operands: []values.Value{operand},
			}
		}
		return -n, nil

	}
	panic(fmt.Errorf("unknown unary operator: %v", expr.Op.Kind))
}

func (e *evaluator) binary(expr *exprs.Binary) (values.Value, error) {
	spine := []*exprs.Binary{expr}
	for {
		left, ok := spine[len(spine)-1].Left.(*exprs.Binary)
		if !ok {
			break
		}
		spine = append(spine, left)
	}

	acc, err := e.eval(spine[len(spine)-1].Left)
	if err != nil {
		return nil, err
	}
	for i := len(spine) - 1; i >= 0; i-- {
		node := spine[i]
		e.pos = node.Op.Pos
		right, err := e.eval(node.Right)
		if err != nil {
			return nil, err
		}
		acc, err = e.apply(node, acc, right)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (e *evaluator) apply(expr *exprs.Binary, left, right values.Value) (values.Value, error) {
	fail := func(err error) (values.Value, error) {
		return nil, &Error{
			Err:      err,
			Op:       expr.Op.Kind.String(),
			Pos:      expr.Op.Pos,
			Operands: []values.Value{left, right},
		}
	}

	switch expr.Op.Kind {

	case exprs.Equal:
		return values.Boolean(values.Equal(left, right)), nil
	case exprs.NotEqual:
		return values.Boolean(!values.Equal(left, right)), nil

	case exprs.Add:
		switch l := left.(type) {
		case values.Number:
			if r, ok := right.(values.Number); ok {
				return l + r, nil
			}
		case values.String:
			if r, ok := right.(values.String); ok {
				return l + r, nil
			}
		}
		return fail(ErrOperandsNumbersOrStrings)

	}

	l, lok := left.(values.Number)
	r, rok := right.(values.Number)
	if !lok || !rok {
		return fail(ErrOperandsNumbers)
	}

	switch expr.Op.Kind {
	case exprs.Subtract:
		return l - r, nil
	case exprs.Multiply:
		return l * r, nil
	case exprs.Divide:
		// IEEE-754: division by zero yields inf or nan
		return l / r, nil
	case exprs.Greater:
		return values.Boolean(l > r), nil
	case exprs.GreaterEqual:
		return values.Boolean(l >= r), nil
	case exprs.Less:
		return values.Boolean(l < r), nil
	case exprs.LessEqual:
		return values.Boolean(l <= r), nil
	}
	panic(fmt.Errorf("unknown binary operator: %v", expr.Op.Kind))
}
