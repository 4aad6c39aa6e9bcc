package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config represents logger configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string
	// Pretty enables human-readable console output instead of JSON
	Pretty bool
	// Output is the output writer (defaults to os.Stdout)
	Output io.Writer
}

// Configure sets up the global logger. Called once at startup.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{Out: config.Output, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}

// New returns a logger tagged with a component name
func New(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// Debug starts a debug-level log event on the global logger
func Debug() *zerolog.Event { return log.Debug() }

// Info starts an info-level log event on the global logger
func Info() *zerolog.Event { return log.Info() }

// Warn starts a warn-level log event on the global logger
func Warn() *zerolog.Event { return log.Warn() }

// Error starts an error-level log event on the global logger
func Error() *zerolog.Event { return log.Error() }

// Fatal starts a fatal-level log event on the global logger
func Fatal() *zerolog.Event { return log.Fatal() }
