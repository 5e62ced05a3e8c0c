// Package log provides diagnostic logging on stderr.
//
// Stdout belongs to the report; everything written here goes to stderr so a
// redirected report stays clean. The level comes from LOG_LEVEL and defaults
// to warn, which keeps a normal run silent.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	logger = zerolog.New(output).
		With().
		Timestamp().
		Str("component", "quickcheck").
		Logger()

	zerolog.SetGlobalLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))
}

func levelFromEnv(lvl string) zerolog.Level {
	if lvl == "" {
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// SetOutput sets the logger output destination
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel sets the global log level
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// Debug logs a debug message
func Debug(msg string) {
	logger.Debug().Msg(msg)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

// Info logs an info message
func Info(msg string) {
	logger.Info().Msg(msg)
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

// Warn logs a warning message
func Warn(msg string) {
	logger.Warn().Msg(msg)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warn().Msgf(format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}

// ErrorWithErr logs an error with the error object
func ErrorWithErr(err error, msg string) {
	logger.Error().Err(err).Msg(msg)
}

// Command returns a debug event pre-populated with the command line, for the
// executor's audit trail.
func Command(cmd string) *zerolog.Event {
	return logger.Debug().Str("command", cmd)
}
