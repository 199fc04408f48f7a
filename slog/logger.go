// Package slog builds the application logger and logging decorators
// around domain services.
package slog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docscrape"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimeFormat is the timestamp layout of every log record.
const TimeFormat = "02.01.2006 15:04:05"

// LoggerConfig describes where and how much to log.
type LoggerConfig struct {
	// Path of the rotating log file. Empty disables the file.
	Path       string
	MaxSizeMB  int
	MaxBackups int
	Level      slog.Level

	// Stream receives a copy of every record, usually stderr.
	Stream io.Writer
}

// NewLogger returns a text logger writing to the rotating file and the
// stream of cfg. The returned closer releases the log file.
func NewLogger(cfg LoggerConfig) (*slog.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, nil, err
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		writers = append(writers, rotator)
		closer = rotator
	}
	if cfg.Stream != nil {
		writers = append(writers, cfg.Stream)
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: cfg.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(TimeFormat))
			}
			return a
		},
	})
	return slog.New(handler), closer, nil
}

// ParseLevel converts a level name such as "debug" to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, docscrape.Errorf(docscrape.EINVALID, "unknown log level %q", name)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
