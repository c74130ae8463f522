// Package logx wraps zerolog behind a package-level logger shared by the
// searchpath library and its CLI. The logger starts disabled: a program that
// never calls Initialize gets a completely silent library, while the CLI
// (or any embedding program) can switch on console and rolling-file output.
package logx

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.Nop()

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	// Level is the log level to use (e.g., "info", "debug").
	Level string
	// ConsoleLogging enables logging to the console.
	ConsoleLogging bool
	// FileLogging enables logging to a rolling file.
	FileLogging bool
	// Directory specifies the directory for log files (used if FileLogging is enabled).
	Directory string
	// Filename is the name of the log file.
	Filename string
	// MaxSize is the maximum size (in MB) of a log file before it is rolled.
	MaxSize int
	// MaxBackups is the maximum number of rolled log files to keep.
	MaxBackups int
	// MaxAge is the maximum age (in days) to keep a log file.
	MaxAge int
	// Compress enables compression of rolled log files.
	Compress bool
}

// Initialize configures the package logger from cfg.
//
// Returns:
//   - An error if the configured level cannot be parsed.
func Initialize(cfg *LoggingConfig) error {
	l, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writers []io.Writer
	if cfg.ConsoleLogging {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
	if cfg.FileLogging {
		writers = append(writers, newRollingFile(cfg))
	}
	if len(writers) == 0 {
		logger = zerolog.Nop()
		return nil
	}

	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Logger()

	return nil
}

// SetLogger replaces the package logger wholesale, for embedding programs
// that already carry a configured zerolog instance.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// As returns the package logger for fluent use: logx.As().Debug()...
func As() *zerolog.Logger {
	return &logger
}

func newRollingFile(cfg *LoggingConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   path.Join(cfg.Directory, cfg.Filename),
		MaxBackups: cfg.MaxBackups, // files
		MaxSize:    cfg.MaxSize,    // megabytes
		MaxAge:     cfg.MaxAge,     // days
		Compress:   cfg.Compress,
	}
}
