package indiepixel

import (
	"log/slog"

	"github.com/gogpu/indiepixel/internal/logger"
)

// SetLogger configures the logger for indiepixel and all its sub-packages.
// By default, indiepixel produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by indiepixel:
//   - [slog.LevelDebug]: render passes, animation dispatch, asset and font loads
//   - [slog.LevelWarn]: non-fatal issues (lossy GIF palette, skipped font files)
//
// Example:
//
//	indiepixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by indiepixel.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Get()
}
