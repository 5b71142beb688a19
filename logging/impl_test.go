package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

type syncErrAppender struct {
	WriterAppender
	err error
}

func (a syncErrAppender) Sync() error {
	return a.err
}

type point struct{ x, y float64 }

func (p point) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", p.x)
	enc.AddFloat64("y", p.y)
	return nil
}

func newBufferLogger(name string, level Level) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewBlankLogger(name)
	logger.SetLevel(level)
	logger.AddAppender(NewWriterAppender(buf))
	return logger, buf
}

func TestWriterAppenderFormat(t *testing.T) {
	logger, buf := newBufferLogger("octree", DEBUG)

	logger.Infow("hello")
	parts := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\t")
	test.That(t, len(parts), test.ShouldEqual, 5)
	test.That(t, parts[1], test.ShouldEqual, "INFO")
	test.That(t, parts[2], test.ShouldEqual, "octree")
	test.That(t, parts[3], test.ShouldStartWith, "logging/impl_test.go:")
	test.That(t, parts[4], test.ShouldEqual, "hello")

	buf.Reset()
	logger.Debugw("splitting leaf", "entries", 2, "depth", 3)
	test.That(t, strings.TrimSuffix(buf.String(), "\n"), test.ShouldEndWith, `splitting leaf	{"entries":2,"depth":3}`)

	buf.Reset()
	logger.Debugw("moved", "to", point{1, 2.5})
	test.That(t, buf.String(), test.ShouldContainSubstring, `{"to":{"x":1,"y":2.5}}`)

	buf.Reset()
	logger.Warnw("unpaired", "entries", 1, "depth")
	test.That(t, buf.String(), test.ShouldContainSubstring, `"entries":1`)
	test.That(t, buf.String(), test.ShouldContainSubstring, `"depth":"missing log value"`)
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("", WARN)

	logger.Debugw("debug")
	logger.Infow("info")
	test.That(t, buf.Len(), test.ShouldEqual, 0)

	logger.Warnw("warn")
	logger.Errorw("error")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	test.That(t, len(lines), test.ShouldEqual, 2)
	test.That(t, lines[0], test.ShouldContainSubstring, "WARN")
	test.That(t, lines[1], test.ShouldContainSubstring, "ERROR")
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)

	logger.SetLevel(DEBUG)
	logger.Debugw("now visible")
	test.That(t, buf.String(), test.ShouldContainSubstring, "now visible")
}

func TestSublogger(t *testing.T) {
	parent, buf := newBufferLogger("parent", INFO)
	sub := parent.Sublogger("child")
	test.That(t, sub.GetLevel(), test.ShouldEqual, INFO)

	sub.Infow("from child")
	test.That(t, buf.String(), test.ShouldContainSubstring, "\tparent.child\t")

	sub.SetLevel(ERROR)
	buf.Reset()
	sub.Infow("dropped")
	parent.Infow("kept")
	test.That(t, buf.String(), test.ShouldNotContainSubstring, "dropped")
	test.That(t, buf.String(), test.ShouldContainSubstring, "kept")
	test.That(t, parent.GetLevel(), test.ShouldEqual, INFO)

	test.That(t, NewBlankLogger("").Sublogger("octree").(*logger).name, test.ShouldEqual, "octree")
}

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)

	logger.Debugw("grew bounds", "x", 1.5, "to", point{3, 4})
	test.That(t, logs.FilterMessage("grew bounds").Len(), test.ShouldEqual, 1)

	entry := logs.All()[0]
	test.That(t, entry.Level, test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, entry.Caller.Defined, test.ShouldBeTrue)
	test.That(t, entry.Caller.File, test.ShouldEndWith, "impl_test.go")
	test.That(t, entry.ContextMap(), test.ShouldResemble, map[string]interface{}{
		"x":  1.5,
		"to": map[string]interface{}{"x": 3.0, "y": 4.0},
	})
}

func TestSync(t *testing.T) {
	logger := NewBlankLogger("")
	test.That(t, logger.Sync(), test.ShouldBeNil)

	errA := errors.New("a")
	errB := errors.New("b")
	logger.AddAppender(syncErrAppender{NewWriterAppender(&bytes.Buffer{}), errA})
	logger.AddAppender(NewWriterAppender(&bytes.Buffer{}))
	logger.AddAppender(syncErrAppender{NewWriterAppender(&bytes.Buffer{}), errB})
	err := logger.Sync()
	test.That(t, errors.Is(err, errA), test.ShouldBeTrue)
	test.That(t, errors.Is(err, errB), test.ShouldBeTrue)
}

func TestLevels(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected Level
		zap      zapcore.Level
	}{
		{"debug", DEBUG, zapcore.DebugLevel},
		{"INFO", INFO, zapcore.InfoLevel},
		{"Warn", WARN, zapcore.WarnLevel},
		{"warning", WARN, zapcore.WarnLevel},
		{"error", ERROR, zapcore.ErrorLevel},
	} {
		level, err := LevelFromString(tc.in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.expected)
		test.That(t, level.AsZap(), test.ShouldEqual, tc.zap)
		test.That(t, strings.EqualFold(level.String(), tc.in) || tc.in == "warning", test.ShouldBeTrue)
	}

	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"verbose"`)
	test.That(t, Level(7).String(), test.ShouldEqual, "Level(7)")
}
