package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/pkgls/pkg/paths"
)

// EnvLogLevel overrides the level chosen by the -l flag count.
const EnvLogLevel = "PKGLS_LOG"

// EnvLogFile overrides the log file location.
const EnvLogFile = "PKGLS_LOG_FILE"

// SetupLogger configures the global logger based on the number of -l flags.
// Output goes to stderr and, when logging is enabled, to a log file.
// quiet disables logging entirely, regardless of the environment.
func SetupLogger(verbosity int, quiet bool) {
	level := LevelForVerbosity(verbosity)

	var envErr error
	if value, ok := os.LookupEnv(EnvLogLevel); ok && !quiet {
		parsed, err := ParseLevel(value)
		if err != nil {
			envErr = err
		}
		level = parsed
	}
	if quiet {
		level = zerolog.Disabled
	}
	zerolog.SetGlobalLevel(level)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	logFile := getLogFilePath()
	var fileErr error
	if level != zerolog.Disabled {
		var logFileHandle *os.File
		logFileHandle, fileErr = setupLogFile(logFile)
		if fileErr == nil {
			writers = append(writers, logFileHandle)
		}
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	if envErr != nil {
		log.Warn().Err(envErr).Str("env", EnvLogLevel).Msg("Unrecognized log level, falling back to error")
	}

	// Add caller information for debug and trace levels
	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("level", level.String()).Str("logFile", logFile).Msg("Logger initialized")
}

// LevelForVerbosity maps the -l flag count to a level:
// none is off, then error, warn, info and debug.
func LevelForVerbosity(count int) zerolog.Level {
	switch {
	case count <= 0:
		return zerolog.Disabled
	case count == 1:
		return zerolog.ErrorLevel
	case count == 2:
		return zerolog.WarnLevel
	case count == 3:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// ParseLevel parses a level name as accepted by PKGLS_LOG. Unknown names
// return ErrorLevel together with an error.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return zerolog.Disabled, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	default:
		return zerolog.ErrorLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the path to the log file under the XDG state home
func getLogFilePath() string {
	if path := os.Getenv(EnvLogFile); path != "" {
		return paths.ExpandHome(path)
	}
	return paths.LogFile()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
