package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/dscope"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/runs"
)

// replScope turns taps off, the starlark prompt and readline would both read stdin.
func replScope(scope dscope.Scope) dscope.Scope {
	scope.Call(func(
		logger logs.Logger,
		tapping loxconfigs.Tapping,
	) {
		if tapping {
			logger.Warn("taps are disabled in the interactive prompt")
		}
	})
	return scope.Fork(
		func() loxconfigs.Tapping {
			return false
		},
	)
}

func runREPL(ctx context.Context, run runs.Run, historyFile loxconfigs.HistoryFile) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: string(historyFile),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		// every line is an independent unit, errors do not end the session
		err = run(ctx, "repl", []byte(line), os.Stdout)
		runs.Report(os.Stderr, err)
	}
}
