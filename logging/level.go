package logging

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap/zapcore"
)

// Level is the severity of a message. A logger drops messages below its level.
type Level int

// Levels in increasing severity. INFO is the zero value.
const (
	DEBUG Level = iota - 1
	INFO
	WARN
	ERROR
)

func (level Level) String() string {
	switch level {
	case DEBUG:
		return "Debug"
	case INFO:
		return "Info"
	case WARN:
		return "Warn"
	case ERROR:
		return "Error"
	default:
		return "Level(" + strconv.Itoa(int(level)) + ")"
	}
}

// AsZap returns the matching zap level.
func (level Level) AsZap() zapcore.Level {
	return zapcore.Level(level)
}

// LevelFromString parses debug, info, warn (or warning) and error, ignoring case.
func LevelFromString(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, errors.Errorf("unknown log level: %q", s)
}

// AtomicLevel is a Level shared between goroutines.
type AtomicLevel struct {
	val *atomic.Int32
}

// NewAtomicLevelAt returns an AtomicLevel set to level.
func NewAtomicLevelAt(level Level) AtomicLevel {
	return AtomicLevel{val: atomic.NewInt32(int32(level))}
}

// Set changes the level.
func (l AtomicLevel) Set(level Level) {
	l.val.Store(int32(level))
}

// Get returns the level.
func (l AtomicLevel) Get() Level {
	return Level(l.val.Load())
}
