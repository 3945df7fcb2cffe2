// File: validation.go
// Title: Configuration Validation
// Description: Rule checks over effective values, environment overrides
//              applied: presence, type, allowed values and pattern.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation of validation
// - 2026-10-14 v0.2.0: OneOf rule, deterministic error order

package config

import (
	"fmt"
	"regexp"
	"strings"

	tkerror "github.com/hrimthurs/Tackle/core/error"
	"github.com/hrimthurs/Tackle/utils/mapx"
)

// ValidationRule describes the values accepted for one key
type ValidationRule struct {
	Required bool
	Type     string   // "string", "bool", "int" or "float"
	OneOf    []string // compared case-insensitively
	Pattern  string   // matched against the value's string form
}

// ValidationRules maps keys to rules
type ValidationRules map[string]ValidationRule

// ValidationResult lists the problems found, one message per key
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil when valid, otherwise one VALIDATION_FAILED error
// naming every problem
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return tkerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(tkerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// typeChecks accept either the decoded type or, for environment values,
// text that converts to it
var typeChecks = map[string]struct {
	name string
	ok   func(interface{}) bool
}{
	"string": {"a string", func(v interface{}) bool { _, ok := v.(string); return ok }},
	"bool":   {"a boolean", func(v interface{}) bool { _, ok := asBool(v); return ok }},
	"int":    {"an integer", isInteger},
	"float":  {"a number", func(v interface{}) bool { _, ok := asFloat(v); return ok }},
}

func isInteger(v interface{}) bool {
	if f, ok := v.(float64); ok {
		return f == float64(int64(f))
	}
	_, ok := asInt(v)
	return ok
}

// Validate checks c against rules, key by key in sorted order
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := mapx.Keys(rules)

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if msg := c.check(key, rules[key]); msg != "" {
			result.Valid = false
			result.Errors = append(result.Errors, msg)
		}
	}
	return result
}

// check returns the problem with key, or ""; callers hold mu
func (c *Config) check(key string, rule ValidationRule) string {
	var value interface{}
	if s, ok := c.env(key); ok {
		value = s
	} else {
		value = c.data.get(splitKey(key))
	}

	if value == nil {
		if rule.Required {
			return fmt.Sprintf("required field '%s' is missing", key)
		}
		return ""
	}

	if rule.Type != "" {
		tc, known := typeChecks[rule.Type]
		if !known {
			return fmt.Sprintf("unknown validation type: %s", rule.Type)
		}
		if !tc.ok(value) {
			return fmt.Sprintf("field '%s' must be %s, got %v", key, tc.name, value)
		}
	}

	str := strings.TrimSpace(fmt.Sprint(value))
	if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, str) {
		return fmt.Sprintf("field '%s' value '%s' is not one of [%s]", key, str, strings.Join(rule.OneOf, ", "))
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Sprintf("invalid regex pattern for field '%s': %v", key, err)
		}
		if !re.MatchString(str) {
			return fmt.Sprintf("field '%s' value '%s' does not match pattern '%s'", key, str, rule.Pattern)
		}
	}
	return ""
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
