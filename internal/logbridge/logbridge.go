// Package logbridge forwards log/slog records to a logrus logger, so
// library logs and command logs share one sink and one level.
package logbridge

import (
	"context"
	"log/slog"

	log "github.com/sirupsen/logrus"
)

// Handler is a slog.Handler writing to a logrus logger.
type Handler struct {
	logger *log.Logger
	attrs  log.Fields
	group  string
}

// New returns a handler writing to l, or to the standard logrus logger when
// l is nil.
func New(l *log.Logger) *Handler {
	if l == nil {
		l = log.StandardLogger()
	}
	return &Handler{logger: l, attrs: log.Fields{}}
}

// Enabled reports whether logrus would emit a record at level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsLevelEnabled(toLogrus(level))
}

// Handle writes r as a logrus entry.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := make(log.Fields, len(h.attrs)+r.NumAttrs())
	for k, v := range h.attrs {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		h.add(fields, h.group, a)
		return true
	})

	entry := h.logger.WithFields(fields)
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(toLogrus(r.Level), r.Message)
	return nil
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := h.clone()
	for _, a := range attrs {
		h.add(out.attrs, h.group, a)
	}
	return out
}

// WithGroup returns a handler that prefixes later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := h.clone()
	out.group = join(h.group, name)
	return out
}

func (h *Handler) clone() *Handler {
	attrs := make(log.Fields, len(h.attrs))
	for k, v := range h.attrs {
		attrs[k] = v
	}
	return &Handler{logger: h.logger, attrs: attrs, group: h.group}
}

func (h *Handler) add(fields log.Fields, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		g := group
		if a.Key != "" {
			g = join(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.add(fields, g, ga)
		}
		return
	}
	fields[join(group, a.Key)] = a.Value.Any()
}

func join(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

func toLogrus(level slog.Level) log.Level {
	switch {
	case level >= slog.LevelError:
		return log.ErrorLevel
	case level >= slog.LevelWarn:
		return log.WarnLevel
	case level >= slog.LevelInfo:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}
