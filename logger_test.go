package indiepixel

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Render(NewRoot(NewRect()))
	assert.Contains(t, buf.String(), "render")

	SetLogger(nil)
	buf.Reset()
	Render(NewRoot(NewRect()))
	assert.Empty(t, buf.String())
}
