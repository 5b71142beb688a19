package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

type testAppender struct {
	tb testing.TB
}

// NewTestAppender returns an appender that writes console lines through tb.Log, so output is
// attributed to the running test.
func NewTestAppender(tb testing.TB) Appender {
	return testAppender{tb: tb}
}

func (a testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	a.tb.Helper()
	line, err := formatLine(entry, fields)
	a.tb.Log(line)
	return err
}

func (a testAppender) Sync() error {
	return nil
}
