// Package logging provides leveled logging for the AAC MCP Server.
// Log output always goes to stderr so that stdio-mode MCP framing on
// stdout is never corrupted.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Initialize configures the global logger with the given verbosity level.
// Levels follow the 0-9 convention: 0-2 error and warning only, 3-4 info,
// 5-9 debug.
func Initialize(level int) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerologLevel(level))
}

func zerologLevel(level int) zerolog.Level {
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

// Debug logs at debug level
func Debug(format string, v ...interface{}) {
	logger.Debug().Msg(fmt.Sprintf(format, v...))
}

// Info logs at info level
func Info(format string, v ...interface{}) {
	logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Warn logs at warning level
func Warn(format string, v ...interface{}) {
	logger.Warn().Msg(fmt.Sprintf(format, v...))
}

// Error logs at error level
func Error(format string, v ...interface{}) {
	logger.Error().Msg(fmt.Sprintf(format, v...))
}
