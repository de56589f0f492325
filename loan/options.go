package loan

import (
	"errors"
	"time"
)

// Logger interface for operational logging from the ledger. Any structured
// logger with message-plus-key-value-pairs methods can satisfy it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring a Ledger.
type Option func(*Ledger) error

// WithLoanPeriod sets how long a borrowed book may be kept before it is
// overdue. Defaults to DefaultLoanPeriod.
func WithLoanPeriod(period time.Duration) Option {
	return func(l *Ledger) error {
		if period <= 0 {
			return errors.New("loan period must be positive")
		}

		l.loanPeriod = period

		return nil
	}
}

// WithClock sets the time source used to stamp new loans. Defaults to
// time.Now. Tests use this to pin borrow timestamps.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) error {
		if clock == nil {
			return errors.New("clock must not be nil")
		}

		l.clock = clock

		return nil
	}
}

// WithLogger sets the logger for the Ledger. Without it the ledger is silent.
func WithLogger(logger Logger) Option {
	return func(l *Ledger) error {
		l.logger = logger
		return nil
	}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
