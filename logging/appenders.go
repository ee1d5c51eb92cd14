package logging

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02T15:04:05.000Z0700"

type stdoutAppender struct {
	encoder zapcore.Encoder
}

// NewStdoutAppender returns an Appender that writes console-formatted
// entries to stdout.
func NewStdoutAppender() Appender {
	return &stdoutAppender{encoder: zapcore.NewConsoleEncoder(NewLoggerConfig().EncoderConfig)}
}

func (a *stdoutAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	buf, err := a.encoder.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	defer buf.Free()
	_, err = fmt.Fprint(os.Stdout, buf.String())
	return err
}

func (a *stdoutAppender) Sync() error {
	return nil
}

type testAppender struct {
	tb testing.TB
}

// NewTestAppender returns an Appender that writes to a testing.TB's Log
// method, so log lines are attributed to the test that produced them.
func NewTestAppender(tb testing.TB) Appender {
	return &testAppender{tb: tb}
}

func (a *testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	a.tb.Helper()
	parts := []string{
		entry.Time.Format(timeFormat),
		strings.ToUpper(entry.Level.String()),
		entry.LoggerName,
		entry.Message,
	}
	a.tb.Log(strings.Join(parts, "\t"))
	return nil
}

func (a *testAppender) Sync() error {
	return nil
}

// NewTestLogger returns a Logger that writes Debug+ logs to tb.
func NewTestLogger(tb testing.TB) Logger {
	return &impl{level: NewAtomicLevelAt(DEBUG), appenders: []Appender{NewTestAppender(tb)}}
}
