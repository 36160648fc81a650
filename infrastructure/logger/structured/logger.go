// ABOUTME: Structured logger backed by sirupsen/logrus with JSON output
// ABOUTME: Optionally writes to a lumberjack-rotated file in addition to stdout

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error; unknown values mean info
	Level string

	// File enables rotated file output when non-empty
	File string

	// MaxSizeMB, MaxBackups and MaxAgeDays tune rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Output overrides stdout, mostly for tests
	Output io.Writer
}

// Logger implements interfaces.Logger
type Logger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// New creates a JSON logger
func New(opts Options) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(ParseLevel(opts.Level))

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	logger := &Logger{entry: l}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    valueOr(opts.MaxSizeMB, 100), // megabytes
			MaxBackups: valueOr(opts.MaxBackups, 3),
			MaxAge:     valueOr(opts.MaxAgeDays, 28), // days
			Compress:   true,
		}
		out = io.MultiWriter(out, rotator)
		logger.closer = rotator
	}
	l.SetOutput(out)

	return logger
}

// ParseLevel maps a config level name to a logrus level
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Close flushes and closes the rotated log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func valueOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
