package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how verbosely the service logs.
type Options struct {
	Level string

	// File enables a rotating log file alongside stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int

	// Console replaces stdout, e.g. stderr for command line tools.
	Console io.Writer
}

// New constructs a JSON slog logger that writes to stdout and, when configured, a rotating file.
func New(opts Options) *slog.Logger {
	return slog.New(slog.NewJSONHandler(output(opts), &slog.HandlerOptions{Level: parseLevel(opts.Level)})).
		With("service", "summarizer")
}

func output(opts Options) io.Writer {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	if strings.TrimSpace(opts.File) == "" {
		return console
	}
	return io.MultiWriter(console, &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	})
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
