package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level is a logging severity, kept distinct from [slog.Level] so CLI flag
// values round-trip through a small, closed set of strings the same way
// [Format] does.
type Level string

const (
	// LevelError enables only error logs.
	LevelError Level = "error"
	// LevelWarn enables warn and error logs.
	LevelWarn Level = "warn"
	// LevelInfo enables info, warn, and error logs.
	LevelInfo Level = "info"
	// LevelDebug enables all logs.
	LevelDebug Level = "debug"
)

// FormatText outputs logs using Charm's human-oriented styling, as opposed
// to the machine-oriented [FormatJSON]/[FormatLogfmt] encoders.
const FormatText Format = "text"

// Handler is the [slog.Handler] type this package produces.
type Handler = slog.Handler

// ParseLevel parses a log level string and returns the corresponding
// [Level].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case string(LevelError):
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case string(LevelInfo):
		return LevelInfo, nil
	case string(LevelDebug):
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	switch f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllLevelStrings returns every recognized level string, for CLI help
// text and shell completion.
func GetAllLevelStrings() []string {
	return []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}
}

// GetAllFormatStrings returns every recognized format string, for CLI help
// text and shell completion.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatLogfmt), string(FormatText)}
}

// slogLevel converts l to its [slog.Level] equivalent, defaulting to
// [slog.LevelInfo] for an unrecognized or zero Level.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// NewHandler creates a [Handler] with the specified level and format.
func NewHandler(w io.Writer, lvl Level, format Format) Handler {
	if format == FormatText {
		return newCharmHandler(w, lvl)
	}

	return CreateHandler(w, lvl.slogLevel(), format)
}

// NewHandlerFromStrings creates a [Handler] by parsing levelStr and
// formatStr.
func NewHandlerFromStrings(w io.Writer, levelStr, formatStr string) (Handler, error) {
	lvl, err := ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, format), nil
}
