// Package log is the process-wide leveled logger. Output goes to stderr so
// generated code written to stdout stays clean.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity that is written.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel accepts debug, info, warn or error, in any case.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	case "warning":
		return LevelWarn, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

// Init replaces the global logger. A nil out means stderr.
func Init(level Level, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	l := newLogger(level, out)
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Get returns the global logger, creating a warn-level one on first use.
func Get() *zap.SugaredLogger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newLogger(LevelWarn, os.Stderr)
	}
	return logger
}

func zapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func newLogger(level Level, out io.Writer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:       "L",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(out), zapLevel(level))
	return zap.New(core).Sugar()
}

// Debug logs msg with alternating key/value pairs.
func Debug(msg string, kv ...any) { Get().Debugw(msg, kv...) }

// Info logs msg with alternating key/value pairs.
func Info(msg string, kv ...any) { Get().Infow(msg, kv...) }

// Warn logs msg with alternating key/value pairs.
func Warn(msg string, kv ...any) { Get().Warnw(msg, kv...) }

// Sync flushes buffered entries.
func Sync() { _ = Get().Sync() }
