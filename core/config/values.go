// File: values.go
// Title: Typed Getters
// Description: Typed reads of configuration values. An environment
//              override wins over the file when it converts to the
//              requested type; otherwise the file value, then the
//              caller's default, then the zero value.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Shared conversion path for all getters

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// lookup resolves key through the environment with fromEnv, then the
// file with fromFile, and falls back to the first default
func lookup[T any](c *Config, key string, fromEnv func(string) (T, bool), fromFile func(interface{}) (T, bool), defaults []T) T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.env(key); ok {
		if v, ok := fromEnv(s); ok {
			return v
		}
	}
	if raw := c.data.get(splitKey(key)); raw != nil {
		if v, ok := fromFile(raw); ok {
			return v
		}
	}
	if len(defaults) > 0 {
		return defaults[0]
	}
	var zero T
	return zero
}

// text adapts a file conversion to environment strings
func text[T any](conv func(interface{}) (T, bool)) func(string) (T, bool) {
	return func(s string) (T, bool) { return conv(s) }
}

func asString(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return fmt.Sprint(v), true
}

func asInt(v interface{}) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

func asBool(v interface{}) (bool, bool) {
	switch v := v.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	}
	return false, false
}

func asFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// asStrings reads a list from the file; a single string is a one-element list
func asStrings(v interface{}) ([]string, bool) {
	switch v := v.(type) {
	case string:
		return []string{v}, true
	case []string:
		return append([]string(nil), v...), true
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out, true
	}
	return nil, false
}

func splitList(s string) ([]string, bool) { return strings.Split(s, ","), true }

func (c *Config) GetString(key string, defaultValue ...string) string {
	return lookup(c, key, text(asString), asString, defaultValue)
}

func (c *Config) GetInt(key string, defaultValue ...int) int {
	return lookup(c, key, text(asInt), asInt, defaultValue)
}

func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	return lookup(c, key, text(asBool), asBool, defaultValue)
}

func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	return lookup(c, key, text(asFloat), asFloat, defaultValue)
}

// GetStringSlice reads a list; an environment override is split on commas
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	return lookup(c, key, splitList, asStrings, defaultValue)
}
