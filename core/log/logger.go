// File: logger.go
// Title: Structured Logger
// Description: An immutable leveled logger. Configuration methods return a
//              copy; copies share the output sink and its lock, so lines
//              written from several goroutines never interleave.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Shared sink, stderr by default, atomic default logger

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) write(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(b)
}

// Config collects the settings of NewWithConfig
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // nil means stderr
	Name   string
	Caller bool // report file:line of the call site
}

// Logger writes structured entries at or above its level
type Logger struct {
	level     Level
	formatter Formatter
	out       *sink
	name      string
	fields    Fields
	caller    bool
	now       func() time.Time
}

// New returns a JSON logger at info level writing to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig returns a logger configured by cfg
func NewWithConfig(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		level:     cfg.Level,
		formatter: NewFormatter(cfg.Format),
		out:       &sink{w: w},
		name:      cfg.Name,
		caller:    cfg.Caller,
		now:       time.Now,
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelAudit + 1, Output: io.Discard})
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// WithLevel returns a copy with minimum level level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy using the built-in formatter f
func (l *Logger) WithFormat(f Format) *Logger {
	return l.WithFormatter(NewFormatter(f))
}

// WithFormatter returns a copy using f
func (l *Logger) WithFormatter(f Formatter) *Logger {
	c := l.clone()
	if f != nil {
		c.formatter = f
	}
	return c
}

// WithOutput returns a copy writing to w through a sink of its own
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	if w == nil {
		w = os.Stderr
	}
	c.out = &sink{w: w}
	return c
}

// WithName returns a copy tagged name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy adding key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Any(key, value))
}

// WithFields returns a copy adding fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.fields = l.fields.Merge(fields)
	return c
}

// WithCaller returns a copy that reports the call site
func (l *Logger) WithCaller(enabled bool) *Logger {
	c := l.clone()
	c.caller = enabled
	return c
}

// Level returns the minimum level
func (l *Logger) Level() Level { return l.level }

// Enabled reports whether an entry at level would be written
func (l *Logger) Enabled(level Level) bool { return level.Enabled(l.level) }

// log builds and writes one entry; skip counts frames above the exported
// method that called it
func (l *Logger) log(skip int, level Level, msg string, err error, fields []Fields) {
	if !l.Enabled(level) {
		return
	}

	e := &Entry{
		Time:    l.now(),
		Level:   level,
		Message: msg,
		Logger:  l.name,
		Err:     err,
		Fields:  make(Fields, len(l.fields)),
	}
	for k, v := range l.fields {
		e.Fields[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			e.Fields[k] = v
		}
	}
	if l.caller {
		if _, file, line, ok := runtime.Caller(skip + 2); ok {
			e.Caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}

	b, ferr := l.formatter.Format(e)
	if ferr != nil {
		b = []byte(fmt.Sprintf("log format error: %v: %s\n", ferr, msg))
	}
	l.out.write(b)
}

func (l *Logger) Trace(msg string, fields ...Fields) { l.log(0, LevelTrace, msg, nil, fields) }
func (l *Logger) Debug(msg string, fields ...Fields) { l.log(0, LevelDebug, msg, nil, fields) }
func (l *Logger) Info(msg string, fields ...Fields)  { l.log(0, LevelInfo, msg, nil, fields) }
func (l *Logger) Warn(msg string, fields ...Fields)  { l.log(0, LevelWarn, msg, nil, fields) }
func (l *Logger) Error(msg string, fields ...Fields) { l.log(0, LevelError, msg, nil, fields) }
func (l *Logger) Audit(msg string, fields ...Fields) { l.log(0, LevelAudit, msg, nil, fields) }

// Fatal logs at fatal level and exits with status 1
func (l *Logger) Fatal(msg string, fields ...Fields) {
	l.log(0, LevelFatal, msg, nil, fields)
	os.Exit(1)
}

func (l *Logger) DebugWithErr(msg string, err error, fields ...Fields) {
	l.log(0, LevelDebug, msg, err, fields)
}

func (l *Logger) WarnWithErr(msg string, err error, fields ...Fields) {
	l.log(0, LevelWarn, msg, err, fields)
}

func (l *Logger) ErrorWithErr(msg string, err error, fields ...Fields) {
	l.log(0, LevelError, msg, err, fields)
}

// LogError logs err at a level chosen from its severity: low as info,
// medium as warn, everything above as error. A structured error adds its
// code, severity, operation and details as fields.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	level := LevelError
	var te *tkerror.Error
	if errors.As(err, &te) {
		extra := Fields{
			"error_code":     string(te.Code()),
			"error_severity": te.Severity().String(),
		}
		if op := te.Operation(); op != "" {
			extra["error_operation"] = op
		}
		for k, v := range te.Details() {
			extra["error_"+k] = v
		}
		fields = append([]Fields{extra}, fields...)

		switch te.Severity() {
		case tkerror.SeverityLow:
			level = LevelInfo
		case tkerror.SeverityMedium:
			level = LevelWarn
		}
	}
	l.log(0, level, err.Error(), nil, fields)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewWithConfig(Config{Level: LevelWarn, Format: FormatText}))
}

// GetDefault returns the process-wide logger
func GetDefault() *Logger { return defaultLogger.Load() }

// SetDefault replaces the process-wide logger; nil is ignored
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

func Trace(msg string, fields ...Fields) { GetDefault().log(0, LevelTrace, msg, nil, fields) }
func Debug(msg string, fields ...Fields) { GetDefault().log(0, LevelDebug, msg, nil, fields) }
func Info(msg string, fields ...Fields)  { GetDefault().log(0, LevelInfo, msg, nil, fields) }
func Warn(msg string, fields ...Fields)  { GetDefault().log(0, LevelWarn, msg, nil, fields) }
func Error(msg string, fields ...Fields) { GetDefault().log(0, LevelError, msg, nil, fields) }
