// File: format.go
// Title: Log Formatters
// Description: JSON, text, colored console and logfmt renderings of log
//              entries. Built-in keys come first in a fixed order, custom
//              fields follow sorted by name, so output is stable.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-14 v0.2.0: Ordered keys, shared logfmt quoting in text output

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

// Format selects a built-in formatter
type Format int8

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole // text with ANSI level colors
	FormatLogfmt
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

// String returns the format name
func (f Format) String() string {
	if f < FormatJSON || f > FormatLogfmt {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat reads a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == key {
			return Format(f), nil
		}
	}
	return FormatJSON, tkerror.New(fmt.Sprintf("unknown log format %q", s)).
		WithCode(tkerror.CodeInvalidInput).
		WithOperation("log.ParseFormat")
}

// Formatter renders one entry, including the trailing newline
type Formatter interface {
	Format(e *Entry) ([]byte, error)
}

// FormatterFunc adapts a plain function to Formatter
type FormatterFunc func(e *Entry) ([]byte, error)

// Format calls fn(e)
func (fn FormatterFunc) Format(e *Entry) ([]byte, error) { return fn(e) }

// NewFormatter returns the built-in formatter for f; unknown formats give JSON
func NewFormatter(f Format) Formatter {
	switch f {
	case FormatText:
		return TextFormatter{TimeLayout: "15:04:05"}
	case FormatConsole:
		return TextFormatter{TimeLayout: "15:04:05", Color: true}
	case FormatLogfmt:
		return LogfmtFormatter{TimeLayout: time.RFC3339}
	default:
		return JSONFormatter{TimeLayout: time.RFC3339}
	}
}

// JSONFormatter writes one JSON object per entry
type JSONFormatter struct {
	TimeLayout string
}

// Format implements Formatter
func (f JSONFormatter) Format(e *Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')

	first := true
	pair := func(key string, value interface{}) {
		if !first {
			b.WriteByte(',')
		}
		first = false

		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')

		if err, ok := value.(error); ok {
			value = err.Error()
		}
		v, err := json.Marshal(value)
		if err != nil {
			v, _ = json.Marshal(fmt.Sprint(value))
		}
		b.Write(v)
	}

	pair("time", e.Time.Format(f.TimeLayout))
	pair("level", e.Level.String())
	if e.Logger != "" {
		pair("logger", e.Logger)
	}
	if e.Caller != "" {
		pair("caller", e.Caller)
	}
	pair("msg", e.Message)
	for _, k := range e.Fields.Keys() {
		pair(k, e.Fields[k])
	}
	if e.Err != nil {
		pair("error", e.Err.Error())
	}

	b.WriteString("}\n")
	return b.Bytes(), nil
}

// TextFormatter writes a compact human readable line:
//
//	15:04:05 WRN {urlx} <decode.go:107> query ignored url="not a url"
type TextFormatter struct {
	TimeLayout string // empty leaves the time out
	Color      bool
}

// Format implements Formatter
func (f TextFormatter) Format(e *Entry) ([]byte, error) {
	var b strings.Builder
	if f.Color {
		b.WriteString(e.Level.Color())
	}

	if f.TimeLayout != "" {
		b.WriteString(e.Time.Format(f.TimeLayout))
		b.WriteByte(' ')
	}
	b.WriteString(e.Level.ShortString())
	if e.Logger != "" {
		b.WriteString(" {" + e.Logger + "}")
	}
	if e.Caller != "" {
		b.WriteString(" <" + e.Caller + ">")
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)

	for _, k := range e.Fields.Keys() {
		b.WriteByte(' ')
		writeKV(&b, k, e.Fields[k])
	}
	if e.Err != nil {
		b.WriteByte(' ')
		writeKV(&b, "error", e.Err)
	}

	if f.Color {
		b.WriteString("\033[0m")
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LogfmtFormatter writes key=value pairs
type LogfmtFormatter struct {
	TimeLayout string
}

// Format implements Formatter
func (f LogfmtFormatter) Format(e *Entry) ([]byte, error) {
	var b strings.Builder

	writeKV(&b, "time", e.Time.Format(f.TimeLayout))
	b.WriteByte(' ')
	writeKV(&b, "level", e.Level.String())
	if e.Logger != "" {
		b.WriteByte(' ')
		writeKV(&b, "logger", e.Logger)
	}
	if e.Caller != "" {
		b.WriteByte(' ')
		writeKV(&b, "caller", e.Caller)
	}
	b.WriteByte(' ')
	writeKV(&b, "msg", e.Message)

	for _, k := range e.Fields.Keys() {
		b.WriteByte(' ')
		writeKV(&b, k, e.Fields[k])
	}
	if e.Err != nil {
		b.WriteByte(' ')
		writeKV(&b, "error", e.Err)
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// writeKV writes key=value, quoting values that are empty or hold spaces,
// quotes, '=' or control characters
func writeKV(b *strings.Builder, key string, value interface{}) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case error:
		s = v.Error()
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}

	b.WriteString(key)
	b.WriteByte('=')
	if s == "" || strings.ContainsAny(s, " =\"\t\r\n") {
		b.WriteString(strconv.Quote(s))
		return
	}
	b.WriteString(s)
}
