// File: codes.go
// Title: Error Code Definitions
// Description: Error codes shared by the Tackle packages, with the
//              category and default severity each one carries.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: URL codec codes, code table

package error

// Code categorizes an error independently of its message
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// URL codec
	CodeURLParse         Code = "URL_PARSE"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR" // no default URL to fall back on

	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

type codeInfo struct {
	category string
	severity Severity
}

var codeTable = map[Code]codeInfo{
	CodeUnknown:          {"generic", SeverityMedium},
	CodeInternal:         {"generic", SeverityHigh},
	CodeNotFound:         {"generic", SeverityMedium},
	CodeInvalidInput:     {"validation", SeverityLow},
	CodeURLParse:         {"url", SeverityLow},
	CodeEnvironmentError: {"url", SeverityHigh},
	CodeConfigError:      {"configuration", SeverityHigh},
	CodeMissingConfig:    {"configuration", SeverityHigh},
	CodeInvalidConfig:    {"configuration", SeverityHigh},
	CodeValidationFailed: {"validation", SeverityLow},
	CodeInvalidFormat:    {"validation", SeverityLow},
	CodeValueOutOfRange:  {"validation", SeverityLow},
}

func (c Code) String() string { return string(c) }

// IsValid reports whether c is one of the codes declared above
func (c Code) IsValid() bool {
	_, ok := codeTable[c]
	return ok
}

// Category groups codes by the package family that raises them
func (c Code) Category() string {
	if info, ok := codeTable[c]; ok {
		return info.category
	}
	return "generic"
}

// DefaultSeverity returns the severity an error with code c gets unless
// one is set explicitly
func (c Code) DefaultSeverity() Severity {
	if info, ok := codeTable[c]; ok {
		return info.severity
	}
	return SeverityMedium
}
