package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger. LOG_LEVEL and LOG_FORMAT=console are
// honored; the default is info-level JSON on stdout.
func New() zerolog.Logger {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	if os.Getenv("LOG_FORMAT") == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
			Timestamp().
			Logger().
			Level(logLevel)
	}

	return zerolog.New(os.Stdout).With().
		Timestamp().
		Logger().
		Level(logLevel)
}
