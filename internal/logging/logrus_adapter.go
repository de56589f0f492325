// Package logging bridges the ledger's logging interface to logrus so the
// application gets structured, leveled output without the core packages
// depending on a concrete logging backend.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter implements loan.Logger on top of a logrus.Logger, mapping
// the message-plus-key-value-pairs call style onto logrus fields.
type LogrusAdapter struct {
	logger *logrus.Logger
}

// NewLogrusAdapter creates an adapter around a freshly configured logrus
// logger writing to out at the given level.
func NewLogrusAdapter(out io.Writer, level logrus.Level) *LogrusAdapter {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	return &LogrusAdapter{logger: logger}
}

// NewLogrusAdapterFor wraps an existing logrus logger.
func NewLogrusAdapterFor(logger *logrus.Logger) *LogrusAdapter {
	return &LogrusAdapter{logger: logger}
}

// Debug logs a debug message.
func (a *LogrusAdapter) Debug(msg string, args ...any) {
	a.logger.WithFields(toFields(args)).Debug(msg)
}

// Info logs an info message.
func (a *LogrusAdapter) Info(msg string, args ...any) {
	a.logger.WithFields(toFields(args)).Info(msg)
}

// Warn logs a warning message.
func (a *LogrusAdapter) Warn(msg string, args ...any) {
	a.logger.WithFields(toFields(args)).Warn(msg)
}

// Error logs an error message.
func (a *LogrusAdapter) Error(msg string, args ...any) {
	a.logger.WithFields(toFields(args)).Error(msg)
}

// toFields converts alternating key/value args into logrus fields. A
// trailing key without a value is kept with a nil value rather than dropped.
func toFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)

	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		if i+1 < len(args) {
			fields[key] = args[i+1]
		} else {
			fields[key] = nil
		}
	}

	return fields
}
