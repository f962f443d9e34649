package parsers

import (
	"errors"
	"fmt"

	"github.com/reusee/lox/tokens"
)

var (
	ErrParse            = errors.New("parse error")
	ErrExpectRightParen = fmt.Errorf("%w: expect ')' after expression", ErrParse)
	ErrUnexpectedToken  = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrExpectEnd        = fmt.Errorf("%w: expect end of expression", ErrParse)
	ErrExpectSemicolon  = fmt.Errorf("%w: expect ';' after expression", ErrParse)
	ErrTooDeep          = fmt.Errorf("%w: expression nested too deeply", ErrParse)
)

// Error pinpoints the offending token.
type Error struct {
	Err     error
	Token   tokens.Token
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error%s (%s): %s", e.Where(), e.Token.Pos, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Where() string {
	if e.Token.Kind == tokens.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}
