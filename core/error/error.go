// File: error.go
// Title: Core Error Implementation
// Description: The Error type: a message plus code, severity, the failing
//              operation, free-form details and the stack at creation.
//              It wraps a cause and works with errors.Is and errors.As.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with contextual errors
// - 2026-10-14 v0.2.0: Chain lookups, %+v formatting, explicit severity tracking

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

// MaxErrorChainDepth bounds how deep Wrap nests errors
const MaxErrorChainDepth = 15

// Error is a structured error
type Error struct {
	message     string
	cause       error
	code        Code
	severity    Severity
	severitySet bool

	operation string
	context   string
	details   map[string]interface{}

	at    time.Time
	stack Stack
}

func newError(message string, cause error) *Error {
	return &Error{
		message:  message,
		cause:    cause,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  map[string]interface{}{},
		at:       time.Now(),
		stack:    callers(2),
	}
}

// New returns an error with code UNKNOWN and medium severity
func New(message string) *Error {
	return newError(message, nil)
}

// Newf is New with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return newError(fmt.Sprintf(format, args...), nil)
}

// Wrap returns an error with message whose cause is err. The code,
// severity and details of the nearest *Error in err's chain carry over.
// Wrap(nil, ...) is nil.
//
// Past MaxErrorChainDepth the chain is flattened into a single cause
// holding its text, and the detail "truncated" is set.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		e := newError(message, errors.New(err.Error()))
		e.details["truncated"] = true
		e.details["original_depth"] = depth
		return e
	}

	e := newError(message, err)
	var inner *Error
	if errors.As(err, &inner) {
		e.code = inner.code
		e.severity = inner.severity
		e.severitySet = inner.severitySet
		for k, v := range inner.details {
			e.details[k] = v
		}
	}
	return e
}

func chainDepth(err error) int {
	n := 0
	for ; err != nil; err = errors.Unwrap(err) {
		n++
	}
	return n
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// WithCode sets the code. Unless WithSeverity was called, the severity
// becomes the code's default.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if !e.severitySet {
		e.severity = code.DefaultSeverity()
	}
	return e
}

// WithSeverity sets the severity; later WithCode calls keep it
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	e.severitySet = true
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithContext attaches free text describing the circumstances
func (e *Error) WithContext(context string) *Error {
	e.context = context
	return e
}

// WithOperation names the failing operation, as "package.Function"
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the message without the cause
func (e *Error) Message() string { return e.message }
func (e *Error) Code() Code { return e.code }
func (e *Error) Severity() Severity { return e.severity }
func (e *Error) Operation() string { return e.operation }
func (e *Error) Context() string { return e.context }
func (e *Error) Timestamp() time.Time { return e.at }
func (e *Error) StackTrace() Stack { return append(Stack(nil), e.stack...) }

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// RootCause follows Unwrap to the innermost error
func (e *Error) RootCause() error {
	var root error = e
	for next := errors.Unwrap(root); next != nil; next = errors.Unwrap(root) {
		root = next
	}
	return root
}

// Format implements fmt.Formatter. %v and %s print Error(); %+v adds
// code, severity, operation, details and the stack.
func (e *Error) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		fmt.Fprintf(s, "%s\ncode=%s severity=%s", e.Error(), e.code, e.severity)
		if e.operation != "" {
			fmt.Fprintf(s, " operation=%s", e.operation)
		}
		if e.context != "" {
			fmt.Fprintf(s, " context=%q", e.context)
		}
		for _, k := range e.detailKeys() {
			fmt.Fprintf(s, " %s=%v", k, e.details[k])
		}
		io.WriteString(s, "\n")
		io.WriteString(s, e.stack.String())
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		io.WriteString(s, e.Error())
	}
}

func (e *Error) detailKeys() []string {
	keys := make([]string, 0, len(e.details))
	for k := range e.details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type errorJSON struct {
	Message   string                 `json:"message"`
	Code      Code                   `json:"code"`
	Severity  string                 `json:"severity"`
	Operation string                 `json:"operation,omitempty"`
	Context   string                 `json:"context,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     string                 `json:"cause,omitempty"`
	Timestamp string                 `json:"timestamp"`
	Stack     Stack                  `json:"stack_trace,omitempty"`
}

// MarshalJSON renders the error for structured logs
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{
		Message:   e.message,
		Code:      e.code,
		Severity:  e.severity.String(),
		Operation: e.operation,
		Context:   e.context,
		Details:   e.details,
		Timestamp: e.at.Format(time.RFC3339),
		Stack:     e.stack,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// walk calls fn for every *Error in err's chain, outermost first, until
// fn returns false
func walk(err error, fn func(*Error) bool) {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) || !fn(e) {
			return
		}
		err = e.cause
	}
}

// HasCode reports whether any *Error in err's chain has code
func HasCode(err error, code Code) bool {
	found := false
	walk(err, func(e *Error) bool {
		found = e.code == code
		return !found
	})
	return found
}

// GetCode returns the code of the outermost *Error, or CodeUnknown
func GetCode(err error) Code {
	code := CodeUnknown
	walk(err, func(e *Error) bool {
		code = e.code
		return false
	})
	return code
}

// GetSeverity returns the severity of the outermost *Error, or SeverityMedium
func GetSeverity(err error) Severity {
	severity := SeverityMedium
	walk(err, func(e *Error) bool {
		severity = e.severity
		return false
	})
	return severity
}
