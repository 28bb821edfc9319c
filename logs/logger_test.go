package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
		if !strings.Contains(buf.String(), "hello=world!") {
			t.Fatalf("got %s", buf.String())
		}

		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("a", 1).WarnContext(ctx, "with span")
		if !strings.Contains(buf.String(), "logs.span=foo") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "a=1") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		defer level.Set(level.Level())
		level.Set(slog.LevelError)
		logger.Info("hidden")
		if buf.Len() != 0 {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("bar"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatal()
	}
	if !strings.Contains(err.Error(), "span: bar") {
		t.Fatalf("got %v", err)
	}
}
