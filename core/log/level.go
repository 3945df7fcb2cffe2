// File: level.go
// Title: Log Levels
// Description: Severity levels of log entries with their names, short
//              tags and console colors.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Level table, structured parse errors

package log

import (
	"fmt"
	"strings"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

// Level orders log entries by importance
type Level int8

const (
	LevelTrace Level = iota
	LevelDebug       // recovered conditions such as lenient parse fallbacks
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelAudit // written whatever the minimum level
)

type levelMeta struct {
	name  string
	short string
	color string
}

var levels = [...]levelMeta{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
	LevelAudit: {"audit", "AUD", "\033[34m"},
}

// aliases accepted by ParseLevel besides the level names
var levelAliases = map[string]Level{
	"trc":         LevelTrace,
	"dbg":         LevelDebug,
	"inf":         LevelInfo,
	"information": LevelInfo,
	"wrn":         LevelWarn,
	"warning":     LevelWarn,
	"err":         LevelError,
	"ftl":         LevelFatal,
	"aud":         LevelAudit,
}

func (l Level) meta() levelMeta {
	if l < LevelTrace || l > LevelAudit {
		return levelMeta{"unknown", "???", "\033[0m"}
	}
	return levels[l]
}

// String returns the lower-case level name
func (l Level) String() string { return l.meta().name }

// ShortString returns the three-letter tag used by the text formats
func (l Level) ShortString() string { return l.meta().short }

// Color returns the ANSI color sequence of the level
func (l Level) Color() string { return l.meta().color }

// Enabled reports whether an entry at level l passes the minimum level min
func (l Level) Enabled(min Level) bool {
	return l == LevelAudit || l >= min
}

// ParseLevel reads a level name or one of its short forms, ignoring case
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for l, m := range levels {
		if m.name == key {
			return Level(l), nil
		}
	}
	if l, ok := levelAliases[key]; ok {
		return l, nil
	}
	return LevelInfo, tkerror.New(fmt.Sprintf("unknown log level %q", s)).
		WithCode(tkerror.CodeInvalidInput).
		WithOperation("log.ParseLevel")
}
