// Package log wraps a shared logrus logger behind package-level
// helpers so callers never thread a logger instance around.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug toggles debug-level output.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetLevel applies a level name from the config schema ("debug",
// "info", "warn", "error"). Unrecognized names keep the current level.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Warn("unknown log level %q, keeping %s", level, logger.GetLevel())
		return
	}
	logger.SetLevel(parsed)
}

// SetOutputFile mirrors log output into path in addition to stdout,
// creating parent directories as needed.
func SetOutputFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

// SetOutput redirects all log output, primarily for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Info logs a formatted message at info level
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a formatted message at debug level
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a formatted message at warning level
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a formatted message at error level
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
