package tokens

import (
	"errors"
	"fmt"
)

var (
	ErrLexical             = errors.New("lexical error")
	ErrUnterminatedString  = fmt.Errorf("%w: unterminated string", ErrLexical)
	ErrUnexpectedCharacter = fmt.Errorf("%w: unexpected character", ErrLexical)
)

type Error struct {
	Err  error
	Pos  Pos
	Char rune
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrUnexpectedCharacter) {
		return fmt.Sprintf("%s %q at %s", e.Err.Error(), e.Char, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the diagnostic text without position.
func (e *Error) Message() string {
	if errors.Is(e.Err, ErrUnexpectedCharacter) {
		return fmt.Sprintf("Unexpected character %q.", e.Char)
	}
	return "Unterminated string."
}
