// Package logging provides the leveled logger used across the server.
//
// Levels follow the --log-level flag (0-9): 0 logs errors only, 1+ adds
// warnings, 3+ adds info and 5+ adds debug output. Output goes to stderr by
// default because stdout carries the MCP stdio transport.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, 0)
)

// Initialize initializes the global logger
func Initialize(level int, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	l := newLogger(out, level)

	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the global logger for structured logging
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Debug logs at debug level (level 5-9)
func Debug(format string, v ...interface{}) {
	Logger().Debug().Msgf(format, v...)
}

// Info logs at info level (level 3-9)
func Info(format string, v ...interface{}) {
	Logger().Info().Msgf(format, v...)
}

// Warn logs at warning level (level 1-9)
func Warn(format string, v ...interface{}) {
	Logger().Warn().Msgf(format, v...)
}

// Error logs at error level (level 0-9)
func Error(format string, v ...interface{}) {
	Logger().Error().Msgf(format, v...)
}

// ZerologLevel maps a 0-9 verbosity to a zerolog level.
func ZerologLevel(level int) zerolog.Level {
	switch {
	case level >= 5:
		return zerolog.DebugLevel
	case level >= 3:
		return zerolog.InfoLevel
	case level >= 1:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func newLogger(out io.Writer, level int) zerolog.Logger {
	return zerolog.New(out).Level(ZerologLevel(level)).With().Timestamp().Logger()
}
