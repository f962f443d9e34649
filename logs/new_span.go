package logs

import (
	"context"
	"crypto/rand"
)

type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

// NewSpan derives a span from ctx. An empty parent defaults to the span already in ctx,
// which is logged as the creator when a different parent is given.
func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator := SpanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		logger.DebugContext(ctx, "span", args...)

		return ctx, span
	}
}
