package runs

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/evals"
	"github.com/reusee/lox/exprs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/parsers"
	"github.com/reusee/lox/tokens"
)

// Run executes one source unit, writing the rendered value of every expression to out.
// Nothing is evaluated when scanning or parsing fails. The first runtime error stops the run.
type Run func(ctx context.Context, name string, src []byte, out io.Writer) error

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxDepth loxconfigs.MaxDepth,
	dumpTokens loxconfigs.DumpTokens,
	dumpAST loxconfigs.DumpAST,
	tapping loxconfigs.Tapping,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, name string, src []byte, out io.Writer) error {
		ctx, _ = newSpan(ctx, "")

		if !utf8.Valid(src) {
			return ErrInvalidUTF8
		}

		toks, err := tokens.Scan(src)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "scanned",
			"name", name,
			"tokens", len(toks),
		)
		if dumpTokens {
			if err := writeTokens(out, toks); err != nil {
				return err
			}
		}

		trees, err := parsers.New(toks, parsers.WithMaxDepth(int(maxDepth))).ParseAll()
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "parsed",
			"name", name,
			"expressions", len(trees),
		)

		for _, tree := range trees {
			if dumpAST {
				if _, err := fmt.Fprintln(out, exprs.Print(tree)); err != nil {
					return err
				}
			}

			value, err := evals.Evaluate(tree)
			if err != nil {
				return err
			}
			logger.DebugContext(ctx, "evaluated",
				"name", name,
				"kind", value.Kind(),
			)

			if tapping {
				tap(ctx, name, map[string]any{
					"source": string(src),
					"tokens": toks,
					"tree":   tree,
					"value":  value,
					"eval":   evalString,
				})
			}

			if _, err := fmt.Fprintln(out, value.String()); err != nil {
				return err
			}
		}

		return nil
	}
}

// evalString is exposed to taps for evaluating ad-hoc snippets
func evalString(src string) string {
	if !utf8.ValidString(src) {
		return ErrInvalidUTF8.Error()
	}
	toks, err := tokens.Scan([]byte(src))
	if err != nil {
		return err.Error()
	}
	tree, err := parsers.New(toks).Parse()
	if err != nil {
		return err.Error()
	}
	value, err := evals.Evaluate(tree)
	if err != nil {
		return err.Error()
	}
	return value.String()
}
