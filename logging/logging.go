// Package logging is a small leveled logger for structured events. Every message carries key/value
// fields and is handed to a set of appenders, which can be plain writers, the test log, or any zap
// core such as the observer used to assert on logs in tests.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger logs messages with alternating key/value pairs.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	SetLevel(level Level)
	GetLevel() Level
	// Sublogger returns a logger named "<name>.<subname>" that writes to the same appenders. Its
	// level starts at the parent's and is changed independently afterwards.
	Sublogger(subname string) Logger
	AddAppender(appender Appender)
	Sync() error
}

// NewBlankLogger returns a logger at DEBUG that writes nowhere until an appender is added.
func NewBlankLogger(name string) Logger {
	return &logger{name: name, level: NewAtomicLevelAt(DEBUG)}
}

// NewTestLogger returns a DEBUG logger writing to the test's log.
func NewTestLogger(tb testing.TB) Logger {
	l, _ := NewObservedTestLogger(tb)
	return l
}

// NewObservedTestLogger is NewTestLogger that also records every entry for later inspection.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	l := NewBlankLogger("")
	l.AddAppender(NewTestAppender(tb))
	l.AddAppender(core)
	return l, logs
}
