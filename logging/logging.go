// Package logging provides structured, leveled logging for the coverage
// planner. It mirrors the shape of a zap-backed sugared logger but trims
// away everything tied to a multi-component robot process: no resource
// registry, no networked log appender, no pattern-based per-logger level
// configuration. A coverage run only ever needs one logger and its
// sub-loggers.
package logging

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a logging severity level.
type Level int

// The supported severities, ordered least to most severe.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// AsZap converts a Level to its zapcore equivalent.
func (l Level) AsZap() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// AtomicLevel is a thread-safe, mutable Level.
type AtomicLevel struct {
	mu    sync.RWMutex
	level Level
}

// NewAtomicLevelAt constructs an AtomicLevel initialized to level.
func NewAtomicLevelAt(level Level) AtomicLevel {
	return AtomicLevel{level: level}
}

// Get returns the current level.
func (a *AtomicLevel) Get() Level {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.level
}

// Set changes the current level.
func (a *AtomicLevel) Set(level Level) {
	a.mu.Lock()
	a.level = level
	a.mu.Unlock()
}

// Appender receives formatted log entries. Implementations must be safe
// for concurrent use.
type Appender interface {
	Write(entry zapcore.Entry, fields []zapcore.Field) error
	Sync() error
}

// Logger is the logging surface used throughout the coverage planner.
// It deliberately mirrors a sugared zap logger's method set rather than
// wrapping zap directly, so that callers depend on this package and not
// on zap itself.
type Logger interface {
	Named(name string) Logger
	Sublogger(subname string) Logger
	AsZap() *zap.SugaredLogger

	SetLevel(level Level)
	GetLevel() Level

	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})

	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})

	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})

	Sync() error
}

// NewLoggerConfig returns the zap config backing AsZap: console-encoded,
// colored levels, no stacktraces.
func NewLoggerConfig() zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

type impl struct {
	name      string
	level     AtomicLevel
	appenders []Appender
}

// NewLogger returns a logger that emits Info+ logs to stdout.
func NewLogger(name string) Logger {
	return &impl{name: name, level: NewAtomicLevelAt(INFO), appenders: []Appender{NewStdoutAppender()}}
}

// NewDebugLogger returns a logger that emits Debug+ logs to stdout.
func NewDebugLogger(name string) Logger {
	return &impl{name: name, level: NewAtomicLevelAt(DEBUG), appenders: []Appender{NewStdoutAppender()}}
}

// NewBlankLogger returns a logger with no appenders wired in, so every
// entry it receives is discarded.
func NewBlankLogger(name string) Logger {
	return &impl{name: name, level: NewAtomicLevelAt(DEBUG)}
}

func (imp *impl) Named(name string) Logger {
	newName := name
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, name)
	}
	return &impl{name: newName, level: imp.level, appenders: imp.appenders}
}

func (imp *impl) Sublogger(subname string) Logger {
	return imp.Named(subname)
}

func (imp *impl) AsZap() *zap.SugaredLogger {
	var cores []zapcore.Core
	for _, appender := range imp.appenders {
		if core, ok := appender.(zapcore.Core); ok {
			cores = append(cores, core)
		}
	}

	config := NewLoggerConfig()
	config.Level = zap.NewAtomicLevelAt(imp.level.Get().AsZap())
	ret := zap.Must(config.Build()).Sugar().Named(imp.name)
	for _, core := range cores {
		ret = ret.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, core)
		}))
	}
	return ret
}

func (imp *impl) SetLevel(level Level) { imp.level.Set(level) }
func (imp *impl) GetLevel() Level      { return imp.level.Get() }

func (imp *impl) shouldLog(level Level) bool {
	return level >= imp.level.Get()
}

func (imp *impl) newEntry(level Level) zapcore.Entry {
	entry := zapcore.Entry{
		Time:       time.Now(),
		Level:      level.AsZap(),
		LoggerName: imp.name,
		Caller:     getCaller(),
	}
	return entry
}

func (imp *impl) write(entry zapcore.Entry, fields []zapcore.Field) {
	for _, appender := range imp.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprint(os.Stderr, err)
		}
	}
}

func (imp *impl) Debug(args ...interface{}) {
	if imp.shouldLog(DEBUG) {
		e := imp.newEntry(DEBUG)
		e.Message = fmt.Sprint(args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Debugf(template string, args ...interface{}) {
	if imp.shouldLog(DEBUG) {
		e := imp.newEntry(DEBUG)
		e.Message = fmt.Sprintf(template, args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	if imp.shouldLog(DEBUG) {
		e := imp.newEntry(DEBUG)
		e.Message = msg
		imp.write(e, fieldsOf(keysAndValues...))
	}
}

func (imp *impl) Info(args ...interface{}) {
	if imp.shouldLog(INFO) {
		e := imp.newEntry(INFO)
		e.Message = fmt.Sprint(args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Infof(template string, args ...interface{}) {
	if imp.shouldLog(INFO) {
		e := imp.newEntry(INFO)
		e.Message = fmt.Sprintf(template, args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	if imp.shouldLog(INFO) {
		e := imp.newEntry(INFO)
		e.Message = msg
		imp.write(e, fieldsOf(keysAndValues...))
	}
}

func (imp *impl) Warn(args ...interface{}) {
	if imp.shouldLog(WARN) {
		e := imp.newEntry(WARN)
		e.Message = fmt.Sprint(args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Warnf(template string, args ...interface{}) {
	if imp.shouldLog(WARN) {
		e := imp.newEntry(WARN)
		e.Message = fmt.Sprintf(template, args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	if imp.shouldLog(WARN) {
		e := imp.newEntry(WARN)
		e.Message = msg
		imp.write(e, fieldsOf(keysAndValues...))
	}
}

func (imp *impl) Error(args ...interface{}) {
	if imp.shouldLog(ERROR) {
		e := imp.newEntry(ERROR)
		e.Message = fmt.Sprint(args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Errorf(template string, args ...interface{}) {
	if imp.shouldLog(ERROR) {
		e := imp.newEntry(ERROR)
		e.Message = fmt.Sprintf(template, args...)
		imp.write(e, nil)
	}
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	if imp.shouldLog(ERROR) {
		e := imp.newEntry(ERROR)
		e.Message = msg
		imp.write(e, fieldsOf(keysAndValues...))
	}
}

// Fatal* log at error severity then exit the process.
func (imp *impl) Fatal(args ...interface{}) {
	e := imp.newEntry(ERROR)
	e.Message = fmt.Sprint(args...)
	imp.write(e, nil)
	os.Exit(1)
}

func (imp *impl) Fatalf(template string, args ...interface{}) {
	e := imp.newEntry(ERROR)
	e.Message = fmt.Sprintf(template, args...)
	imp.write(e, nil)
	os.Exit(1)
}

func (imp *impl) Fatalw(msg string, keysAndValues ...interface{}) {
	e := imp.newEntry(ERROR)
	e.Message = msg
	imp.write(e, fieldsOf(keysAndValues...))
	os.Exit(1)
}

func (imp *impl) Sync() error {
	var errs []error
	for _, appender := range imp.appenders {
		if err := appender.Sync(); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

// fieldsOf turns alternating key/value pairs into zap fields, matching the
// sugared-logger *w convention. An odd trailing key is reported rather
// than silently dropped.
func fieldsOf(keysAndValues ...interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprintf("%v", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(key, keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(key, "unpaired log key"))
		}
	}
	return fields
}

const skipToLogCaller = 3

func getCaller() zapcore.EntryCaller {
	var caller zapcore.EntryCaller
	pc, file, line, ok := runtime.Caller(skipToLogCaller)
	if !ok {
		return caller
	}
	caller.PC, caller.File, caller.Line, caller.Defined = pc, file, line, true
	if fn := runtime.FuncForPC(pc); fn != nil {
		caller.Function = fn.Name()
	}
	return caller
}
