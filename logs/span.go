package logs

import (
	"context"
	"fmt"
)

// Span identifies one unit of work, usually one run of a source unit.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}

func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

// SpanError annotates an error with the span it happened in.
type SpanError struct {
	Err  error
	Span Span
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("%v (span %s)", e.Err, e.Span)
}

func (e *SpanError) Unwrap() error {
	return e.Err
}

// WrapSpan returns err unchanged when ctx carries no span.
func WrapSpan(ctx context.Context, err error) error {
	span := SpanOf(ctx)
	if span == "" || err == nil {
		return err
	}
	return &SpanError{
		Err:  err,
		Span: span,
	}
}
