package util

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	appLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	loggerMu  sync.RWMutex
)

// InitLogger configures the process logger. Development gets a console
// writer, every other environment writes JSON lines.
func InitLogger(level, env string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	if env == "test" {
		lvl = zerolog.Disabled
	}

	SetLogger(zerolog.New(out).Level(lvl).With().Timestamp().Logger())
}

// Logger returns the process logger.
func Logger() *zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	l := appLogger
	return &l
}

// SetLogger replaces the process logger. Tests use it to capture output.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	appLogger = l
	loggerMu.Unlock()
}

// Component returns a child logger tagged with component=name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}
