// Package logger builds the slog logger for the CLI. Console output goes to
// the writer the caller hands in so stdout stays reserved for sheets.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logging configuration
type Config struct {
	Level          string
	Format         string
	FilePath       string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// Levels lists the accepted level names
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the config
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("level", strings.ToLower(c.Level), Levels(), vb)
	errors.ValidateEnum("format", c.Format, []string{FormatText, FormatJSON}, vb)
	if c.FilePath != "" {
		errors.ValidateMin("file_max_size_mb", c.FileMaxSizeMB, 1, vb)
		errors.ValidateMin("file_max_backups", c.FileMaxBackups, 0, vb)
		errors.ValidateMin("file_max_age_days", c.FileMaxAgeDays, 0, vb)
	}
	return vb.Build()
}

// New creates a logger writing to console and, when FilePath is set, to a
// rotating file. The returned closer releases the file.
func New(cfg Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid logger config")
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	handlers := []slog.Handler{newHandler(console, cfg.Format, opts)}

	var closer io.Closer = nopCloser{}
	if cfg.FilePath != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		// Files always get json for later parsing
		handlers = append(handlers, newHandler(logFile, FormatJSON, opts))
		closer = logFile
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(newMultiHandler(handlers...)), closer, nil
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a level name to slog.Level, defaulting to warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multiHandler is a handler that writes to multiple underlying handlers
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
