// Package logging provides the zerolog-backed zesty.Logger used by the CLI
// and the examples.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/zesty-client/pkg/zesty"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat is returned for a format other than console or json.
var ErrUnknownFormat = errors.New("unknown log format")

// Config configures a Logger.
type Config struct {
	// Level is a zerolog level name; defaults to "info".
	Level string
	// Format is "console" or "json"; defaults to "console".
	Format string
	// Output defaults to os.Stderr so command output stays clean.
	Output    io.Writer
	NoColor   bool
	Timestamp bool
}

// ApplyDefaults fills in unset values.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = zerolog.InfoLevel.String()
	}

	if c.Format == "" {
		c.Format = FormatConsole
	}

	if c.Output == nil {
		c.Output = os.Stderr
	}
}

// Logger implements zesty.Logger on top of zerolog.
type Logger struct {
	logger zerolog.Logger
}

var _ zesty.Logger = (*Logger)(nil)

// New creates a logger from config.
func New(cfg Config) (*Logger, error) {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var zl zerolog.Logger

	switch strings.ToLower(cfg.Format) {
	case FormatConsole:
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        cfg.Output,
			NoColor:    cfg.NoColor,
			TimeFormat: "15:04:05",
		})
	case FormatJSON:
		zl = zerolog.New(cfg.Output)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, cfg.Format)
	}

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}

	return &Logger{logger: zl.Level(level)}, nil
}

// NewVerbose returns a debug-level console logger on stderr, or a disabled
// one when verbose is false.
func NewVerbose(verbose bool) *Logger {
	if !verbose {
		return Nop()
	}

	return &Logger{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithFields returns a logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{logger: l.logger.With().Fields(fields).Logger()}
}

// Debug implements zesty.Logger.Debug.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements zesty.Logger.Info.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements zesty.Logger.Warn.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements zesty.Logger.Error.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
