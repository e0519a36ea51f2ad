// Package logging configures the logrus logger used across gclidtime.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Field names shared by log entries.
const (
	FieldSubsystem = "subsystem"
	FieldRunID     = "run_id"
	FieldToken     = "token"
)

// tokenPrefixLen is how many characters of a token survive redaction.
const tokenPrefixLen = 6

// RedactHook shortens token fields so full identifiers never reach the log.
type RedactHook struct{}

func (h *RedactHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *RedactHook) Fire(e *logrus.Entry) error {
	if token, ok := e.Data[FieldToken].(string); ok {
		e.Data[FieldToken] = Redact(token)
	}
	return nil
}

// Redact keeps a short prefix of a token and its length.
func Redact(token string) string {
	runes := []rune(token)
	if len(runes) <= tokenPrefixLen {
		return fmt.Sprintf("***(%d chars)", len(runes))
	}
	return fmt.Sprintf("%s***(%d chars)", string(runes[:tokenPrefixLen]), len(runes))
}

// New returns a logger writing text records at the given level to w.
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.AddHook(&RedactHook{})
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// ForRun returns an entry tagged with the subsystem and run ID.
func ForRun(logger *logrus.Logger, subsystem, runID string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		FieldSubsystem: subsystem,
		FieldRunID:     runID,
	})
}
