package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span for running the named program.
// A span already in ctx is recorded as the parent.
type NewSpan func(ctx context.Context, program string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, program string) (context.Context, Span) {
		parent := SpanOf(ctx)

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{
			"program", program,
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
