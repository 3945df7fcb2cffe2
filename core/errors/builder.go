// File: builder.go
// Title: Error Builder
// Description: Fluent construction of *tkerror.Error values that carry the
//              reporting module and operation as details.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Severity left to the code unless set

package errors

import (
	"fmt"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

// ErrorBuilder collects the parts of an error until Build
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	code      tkerror.Code
	severity  *tkerror.Severity
	details   map[string]interface{}
}

// NewErrorBuilder starts an error reported by module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		code:    tkerror.CodeUnknown,
		details: map[string]interface{}{},
	}
}

func (b *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	b.operation = operation
	return b
}

func (b *ErrorBuilder) Message(message string) *ErrorBuilder {
	b.message = message
	return b
}

func (b *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	return b.Message(fmt.Sprintf(format, args...))
}

func (b *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	b.cause = cause
	return b
}

func (b *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	b.details[key] = value
	return b
}

func (b *ErrorBuilder) Code(code tkerror.Code) *ErrorBuilder {
	b.code = code
	return b
}

// Severity overrides the default severity of the code
func (b *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	b.severity = &severity
	return b
}

// qualified returns "module.operation", or the module alone
func (b *ErrorBuilder) qualified() string {
	if b.operation == "" {
		return b.module
	}
	return b.module + "." + b.operation
}

// Build returns the error. Without a message one is derived from the
// module and operation. A nil cause gives an error without cause.
func (b *ErrorBuilder) Build() *tkerror.Error {
	msg := b.message
	switch {
	case msg != "":
	case b.operation != "":
		msg = b.qualified() + " failed"
	default:
		msg = b.module + " operation failed"
	}

	var err *tkerror.Error
	if b.cause != nil {
		err = tkerror.Wrap(b.cause, msg)
	} else {
		err = tkerror.New(msg)
	}

	err.WithCode(b.code).
		WithOperation(b.qualified()).
		WithDetails(b.details).
		WithDetail("module", b.module)
	if b.operation != "" {
		err.WithDetail("operation", b.operation)
	}
	if b.severity != nil {
		err.WithSeverity(*b.severity)
	}
	return err
}
