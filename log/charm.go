package log

import (
	"context"
	"io"
	"log/slog"

	charmlog "charm.land/log/v2"
)

// charmHandler adapts a [charmlog.Logger] to [slog.Handler], so
// [FormatText] gets Charm's human-oriented styling instead of the
// machine-oriented json/logfmt encoders the other formats use.
type charmHandler struct {
	logger   *charmlog.Logger
	minLevel slog.Level
	attrs    []slog.Attr
}

func newCharmHandler(w io.Writer, lvl Level) slog.Handler {
	return &charmHandler{
		logger:   charmlog.New(w),
		minLevel: lvl.slogLevel(),
	}
}

func (h *charmHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

func (h *charmHandler) Handle(_ context.Context, rec slog.Record) error {
	kvs := make([]any, 0, (len(h.attrs)+rec.NumAttrs())*2)
	for _, a := range h.attrs {
		kvs = append(kvs, a.Key, a.Value.Any())
	}

	rec.Attrs(func(a slog.Attr) bool {
		kvs = append(kvs, a.Key, a.Value.Any())
		return true
	})

	switch {
	case rec.Level >= slog.LevelError:
		h.logger.Error(rec.Message, kvs...)
	case rec.Level >= slog.LevelWarn:
		h.logger.Warn(rec.Message, kvs...)
	case rec.Level >= slog.LevelInfo:
		h.logger.Info(rec.Message, kvs...)
	default:
		h.logger.Debug(rec.Message, kvs...)
	}

	return nil
}

func (h *charmHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &charmHandler{logger: h.logger, minLevel: h.minLevel, attrs: merged}
}

// WithGroup returns h unchanged; charmlog.Logger has no native grouping, so
// grouped attrs fall back to a flat key/value list.
func (h *charmHandler) WithGroup(_ string) slog.Handler {
	return h
}
