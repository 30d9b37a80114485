package observ

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger for CLI output. Verbose enables the
// per-stage and per-day debug traces emitted by the pipeline and backtest.
func Init(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// Logger returns a child logger tagged with a component name.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
