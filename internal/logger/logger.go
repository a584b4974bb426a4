// Package logger wraps logrus for consistent logging across commands.
// Logs go to stderr so rendered reports on stdout stay clean.
package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger.
type Logger struct {
	*logrus.Logger
}

// New creates a logger with the default configuration.
func New() *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	return &Logger{Logger: log}
}

// SetLevel sets the logging level from its string name. Unknown names fall
// back to warn.
func (l *Logger) SetLevel(level string) {
	switch level {
	case "debug":
		l.Logger.SetLevel(logrus.DebugLevel)
	case "info":
		l.Logger.SetLevel(logrus.InfoLevel)
	case "warn":
		l.Logger.SetLevel(logrus.WarnLevel)
	case "error":
		l.Logger.SetLevel(logrus.ErrorLevel)
	default:
		l.Logger.SetLevel(logrus.WarnLevel)
	}
}
