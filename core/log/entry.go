// File: entry.go
// Title: Log Entries and Fields
// Description: The record handed to formatters and the helpers that build
//              structured fields.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Caller as file:line, sorted field keys

package log

import (
	"time"

	"github.com/hrimthurs/Tackle/utils/mapx"
)

// Entry is one log record
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Logger  string // name of the emitting logger, may be empty
	Caller  string // file:line, set when caller reporting is on
	Fields  Fields
	Err     error
}

// Fields are the structured key-value pairs of an entry
type Fields map[string]interface{}

// Any returns a single field
func Any(key string, value interface{}) Fields { return Fields{key: value} }

// String returns a single string field
func String(key, value string) Fields { return Fields{key: value} }

// Int returns a single integer field
func Int(key string, value int) Fields { return Fields{key: value} }

// Bool returns a single boolean field
func Bool(key string, value bool) Fields { return Fields{key: value} }

// Err returns the field "error" holding err
func Err(err error) Fields { return Fields{"error": err} }

// Merge returns a new set holding f and other; other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	return mapx.Merge(f, other)
}

// Keys returns the field names sorted
func (f Fields) Keys() []string {
	return mapx.Keys(f)
}
