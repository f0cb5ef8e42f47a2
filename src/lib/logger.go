package lib

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	loggerOnce sync.Once
	logger     zerolog.Logger
)

// Logger returns the process-wide zerolog logger. JSON to stdout by default;
// LOG_LEVEL and LOG_FORMAT=console override via env.
func Logger() *zerolog.Logger {
	loggerOnce.Do(func() {
		level := zerolog.InfoLevel
		if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))); err == nil && os.Getenv("LOG_LEVEL") != "" {
			level = parsed
		}

		output := zerolog.New(os.Stdout)
		if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
			output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		}

		zerolog.TimeFieldFormat = time.RFC3339Nano
		logger = output.
			Level(level).
			With().
			Timestamp().
			Str("app", "shareit").
			Logger()
	})
	return &logger
}
