package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2023/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), l)
	assert.Same(t, l, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Info("hello", "day", 3)
	assert.Contains(t, buf.String(), "day=3")
}
