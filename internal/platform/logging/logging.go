// Package logging builds the slog loggers shared by every command.
//
// Console output goes through charmbracelet/log, styled text by default or
// JSON on request. An optional file sink writes JSON lines through a rotating
// lumberjack writer.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Console formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures New.
type Options struct {
	// Level is debug, info, warn or error. Empty means info.
	Level string
	// Format is FormatText or FormatJSON. Empty means FormatText.
	Format string
	// File enables a rotating JSON file sink when set.
	File string
	// Prefix is shown before console messages, usually the service name.
	Prefix string
}

// Logger is a configured slog logger plus the resources it owns.
type Logger struct {
	*slog.Logger
	file io.Closer
}

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// New builds a logger writing to console and, optionally, to opts.File.
func New(console io.Writer, opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if console == nil {
		console = io.Discard
	}

	formatter := charmLog.TextFormatter
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
	case FormatJSON:
		formatter = charmLog.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	handlers := []slog.Handler{charmLog.NewWithOptions(console, charmLog.Options{
		Level:           level,
		Prefix:          strings.TrimSpace(opts.Prefix),
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})}

	logger := &Logger{}
	if path := strings.TrimSpace(opts.File); path != "" {
		rotating := &lumberjack.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(rotating, &slog.HandlerOptions{Level: slog.Level(level)}))
		logger.file = rotating
	}

	if len(handlers) == 1 {
		logger.Logger = slog.New(handlers[0])
	} else {
		logger.Logger = slog.New(slog.NewMultiHandler(handlers...))
	}
	return logger, nil
}

// ParseLevel maps a level name to a charm level. Empty means info.
func ParseLevel(raw string) (charmLog.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return charmLog.InfoLevel, nil
	}
	if strings.EqualFold(raw, "warning") {
		raw = "warn"
	}
	level, err := charmLog.ParseLevel(raw)
	if err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", raw, err)
	}
	return level, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
