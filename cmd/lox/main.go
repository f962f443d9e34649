package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
	"github.com/reusee/lox/runs"
)

var (
	scriptPath string
	inlineSrcs = cmds.Collect[string]("-e", "run source given as argument, repeatable")
)

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		scriptPath = path
	}).Desc("run a lox source file"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	switch {

	case len(*inlineSrcs) > 0:
		scope.Call(func(
			run runs.Run,
		) {
			for _, src := range *inlineSrcs {
				if code := execute(ctx, run, "-e", []byte(src)); code != runs.ExitOK {
					os.Exit(code)
				}
			}
		})

	case scriptPath != "":
		scope.Call(func(
			logger logs.Logger,
			newSpan logs.NewSpan,
			run runs.Run,
		) {
			src, err := os.ReadFile(scriptPath)
			if err != nil {
				ctx, _ := newSpan(ctx, "")
				logger.ErrorContext(ctx, "read source",
					"path", scriptPath,
					"error", logs.WrapSpan(ctx, wrap(err)),
				)
				os.Exit(runs.ExitNoInput)
			}
			os.Exit(execute(ctx, run, scriptPath, src))
		})

	default:
		replScope(scope).Call(func(
			logger logs.Logger,
			run runs.Run,
			historyFile loxconfigs.HistoryFile,
		) {
			if err := runREPL(ctx, run, historyFile); err != nil {
				logger.ErrorContext(ctx, "repl",
					"error", wrap(err),
				)
				os.Exit(runs.ExitFailure)
			}
		})

	}
}

func execute(ctx context.Context, run runs.Run, name string, src []byte) int {
	err := run(ctx, name, src, os.Stdout)
	runs.Report(os.Stderr, err)
	return runs.ExitCode(err)
}
