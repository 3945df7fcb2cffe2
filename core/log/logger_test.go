// File: logger_test.go
// Title: Logger Tests
// Description: Level filtering, immutable copies, error logging and concurrent
//              writes through a shared sink.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Rewritten for the ordered formatters

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

var fixedTime = time.Date(2026, 10, 14, 9, 30, 5, 0, time.UTC)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	l := NewWithConfig(Config{Level: level, Format: format, Output: buf})
	l.now = func() time.Time { return fixedTime }
	return l
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"wrn", LevelWarn, false},
		{"err", LevelError, false},
		{"audit", LevelAudit, false},
		{"loud", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if err != nil && !tkerror.HasCode(err, tkerror.CodeInvalidInput) {
				t.Errorf("error code = %s, want INVALID_INPUT", tkerror.GetCode(err))
			}
		})
	}
}

func TestLevelStrings(t *testing.T) {
	if LevelWarn.String() != "warn" || LevelWarn.ShortString() != "WRN" {
		t.Errorf("LevelWarn = %q/%q", LevelWarn.String(), LevelWarn.ShortString())
	}
	if Level(42).String() != "unknown" {
		t.Errorf("Level(42).String() = %q", Level(42).String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn, FormatLogfmt)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Audit("always")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below warn were written:\n%s", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("want 2 lines, got:\n%s", out)
	}
	if !l.Enabled(LevelError) || l.Enabled(LevelInfo) {
		t.Error("Enabled does not follow the minimum level")
	}
}

func TestLoggerIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo, FormatLogfmt)
	named := base.WithName("urlx").WithField("request", 7)

	base.Info("plain")
	named.Info("tagged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	if strings.Contains(lines[0], "logger=") || strings.Contains(lines[0], "request=") {
		t.Errorf("base logger picked up settings of its copy: %s", lines[0])
	}
	if !strings.Contains(lines[1], "logger=urlx") || !strings.Contains(lines[1], "request=7") {
		t.Errorf("copy lost its settings: %s", lines[1])
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "low severity logs as info",
			err:       tkerror.New("bad flag").WithCode(tkerror.CodeInvalidInput),
			wantLevel: "info",
			wantCode:  "INVALID_INPUT",
		},
		{
			name:      "medium severity logs as warn",
			err:       tkerror.New("odd").WithCode(tkerror.CodeUnknown).WithSeverity(tkerror.SeverityMedium),
			wantLevel: "warn",
			wantCode:  "UNKNOWN",
		},
		{
			name:      "high severity logs as error",
			err:       tkerror.New("no config").WithCode(tkerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "plain error logs as error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf, LevelTrace, FormatJSON).LogError(tt.err)

			var got map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
			}
			if got["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", got["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && got["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %s", got["error_code"], tt.wantCode)
			}
			if tt.wantCode == "" {
				if _, ok := got["error_code"]; ok {
					t.Errorf("plain error carries error_code")
				}
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, LevelTrace, FormatJSON).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error was logged: %s", buf.String())
	}
}

func TestCaller(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, LevelInfo, FormatLogfmt).WithCaller(true).Info("here")

	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Errorf("caller not reported: %s", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(LevelFatal) {
		t.Error("Discard logger enables fatal entries")
	}
	l.Error("dropped")
}

func TestDefaultLogger(t *testing.T) {
	prev := GetDefault()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(newTestLogger(&buf, LevelInfo, FormatLogfmt))
	SetDefault(nil)

	Info("from package level")
	Debug("below level")

	if !strings.Contains(buf.String(), `msg="from package level"`) {
		t.Errorf("package-level Info not routed to default: %q", buf.String())
	}
	if strings.Contains(buf.String(), "below level") {
		t.Error("package-level Debug ignored the default level")
	}
}

func TestConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo, FormatLogfmt)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l := base.WithField("worker", n)
			for j := 0; j < 50; j++ {
				l.Info("tick")
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 400 {
		t.Fatalf("want 400 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "time=") || !strings.Contains(line, " msg=tick worker=") {
			t.Fatalf("interleaved line: %q", line)
		}
	}
}

func BenchmarkLoggerInfo(b *testing.B) {
	l := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &bytes.Buffer{}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark", String("key", "value"), Int("n", i))
	}
}
