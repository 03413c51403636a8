// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error, disabled.
	// Default: warn (stderr stays quiet for scripted use)
	Level string

	// Format is the output format: json or console.
	// Default: json
	Format string

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool

	// Timestamp enables timestamps in log output.
	// Default: true
	Timestamp bool

	// Output is the writer for log output.
	// Default: os.Stderr. Ignored when File is set.
	Output io.Writer

	// File, when set, sends logs to a size-rotated file instead of Output.
	File string

	// Rotation controls the rotated log file.
	Rotation RotationConfig
}

// RotationConfig controls log file rotation.
type RotationConfig struct {
	// MaxSizeMB is the size at which the file is rotated. Default: 10
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept. Default: 3
	MaxBackups int

	// MaxAgeDays is how long rotated files are kept. 0 keeps them forever.
	MaxAgeDays int

	// Compress gzips rotated files.
	Compress bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "warn",
		Format:    "json",
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
		Rotation: RotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

var (
	// log is the global logger instance.
	log zerolog.Logger

	// rotator is the open log file, if any.
	rotator *lumberjack.Logger

	// mu protects concurrent initialization.
	mu sync.RWMutex
)

//nolint:gochecknoinits // init ensures logging works before explicit Init() call
func init() {
	initLogger(DefaultConfig())
}

// Init initializes the global logger with the given configuration.
// It is safe to call multiple times; subsequent calls reconfigure the logger
// and close a previously opened log file.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// Close flushes and closes the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

// initLogger configures the global logger (must be called with mu held).
func initLogger(cfg Config) {
	// Apply defaults for empty values
	if cfg.Level == "" {
		cfg.Level = "warn"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.ErrorFieldName = "error"
	zerolog.CallerFieldName = "caller"

	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}

	var output io.Writer = cfg.Output
	if cfg.File != "" {
		rotator = newRotator(cfg.File, cfg.Rotation)
		output = rotator
	}
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
			NoColor:    cfg.File != "",
		}
	}

	l := zerolog.New(output)
	if cfg.Timestamp {
		l = l.With().Timestamp().Logger()
	}
	if cfg.Caller {
		l = l.With().Caller().Logger()
	}
	log = l
}

func newRotator(path string, rc RotationConfig) *lumberjack.Logger {
	if rc.MaxSizeMB <= 0 {
		rc.MaxSizeMB = 10
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rc.MaxSizeMB,
		MaxBackups: rc.MaxBackups,
		MaxAge:     rc.MaxAgeDays,
		Compress:   rc.Compress,
	}
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// With creates a child logger with additional context.
//
//	storeLogger := logging.With().Str("component", "store").Logger()
func With() zerolog.Context {
	mu.RLock()
	defer mu.RUnlock()
	return log.With()
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug()
}

// Warn starts a new message with warning level.
func Warn() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn()
}

// Err starts a new message with error level and adds the error.
//
//	logging.Err(err).Msg("Operation failed")
func Err(err error) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Err(err)
}

// NewTestLogger creates a logger that writes to the provided writer.
// This is useful for testing to capture log output.
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test")
//	output := buf.String()
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
