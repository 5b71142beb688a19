package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
)

// TimeFormat is the timestamp layout of console lines.
const TimeFormat = "2006-01-02T15:04:05.000Z0700"

// Appender receives every entry a logger emits. Any zapcore.Core is an Appender.
type Appender interface {
	Write(zapcore.Entry, []zapcore.Field) error
	Sync() error
}

// WriterAppender writes one tab separated line per entry: time, level, logger name, caller,
// message and the fields as a JSON object.
type WriterAppender struct {
	w io.Writer
}

// NewWriterAppender returns an appender writing lines to w.
func NewWriterAppender(w io.Writer) WriterAppender {
	return WriterAppender{w: w}
}

// Write implements Appender.
func (a WriterAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	line, err := formatLine(entry, fields)
	if _, werr := fmt.Fprintln(a.w, line); werr != nil {
		return werr
	}
	return err
}

// Sync implements Appender.
func (a WriterAppender) Sync() error {
	return nil
}

// formatLine renders entry without its fields if they cannot be encoded, and returns the encoding
// error alongside.
func formatLine(entry zapcore.Entry, fields []zapcore.Field) (string, error) {
	parts := []string{
		entry.Time.Format(TimeFormat),
		strings.ToUpper(entry.Level.String()),
		entry.LoggerName,
	}
	if entry.Caller.Defined {
		// dir/file.go:line
		parts = append(parts, fmt.Sprintf("%s/%s:%d",
			filepath.Base(filepath.Dir(entry.Caller.File)), filepath.Base(entry.Caller.File), entry.Caller.Line))
	}
	parts = append(parts, entry.Message)
	if len(fields) == 0 {
		return strings.Join(parts, "\t"), nil
	}

	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := enc.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return strings.Join(parts, "\t"), err
	}
	defer buf.Free()
	return strings.Join(append(parts, buf.String()), "\t"), nil
}
