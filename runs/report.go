package runs

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/lox/evals"
	"github.com/reusee/lox/parsers"
	"github.com/reusee/lox/tokens"
)

const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
)

// Report writes one line per diagnostic in err, joined errors flattened.
func Report(w io.Writer, err error) {
	for _, err := range flatten(err) {
		fmt.Fprintln(w, diagnostic(err))
	}
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var ret []error
		for _, err := range joined.Unwrap() {
			ret = append(ret, flatten(err)...)
		}
		return ret
	}
	return []error{err}
}

func diagnostic(err error) string {
	var scanErr *tokens.Error
	if errors.As(err, &scanErr) {
		return fmt.Sprintf("[line %d] Error: %s", scanErr.Pos.Line, scanErr.Message())
	}
	var parseErr *parsers.Error
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("[line %d] Error%s: %s", parseErr.Token.Pos.Line, parseErr.Where(), parseErr.Message)
	}
	var evalErr *evals.Error
	if errors.As(err, &evalErr) {
		return fmt.Sprintf("[line %d] Error%s: %s", evalErr.Pos.Line, evalErr.Where(), evalErr.Message())
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

// ExitCode maps a Run error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, tokens.ErrLexical),
		errors.Is(err, parsers.ErrParse),
		errors.Is(err, ErrInvalidUTF8):
		return ExitDataErr
	case errors.Is(err, evals.ErrRuntime):
		return ExitSoftware
	}
	return ExitFailure
}
