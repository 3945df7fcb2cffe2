// File: helpers.go
// Title: Module Error Helpers
// Description: The standard failures the Tackle packages report, plus
//              lookups of the module and operation recorded on an error.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: URLParse and Environment helpers

package errors

import (
	"errors"
	"fmt"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

// Reporting modules
const (
	ModuleURLx    = "urlx"
	ModuleSlicex  = "slicex"
	ModuleMapx    = "mapx"
	ModuleStringx = "stringx"
	ModuleMathx   = "mathx"
	ModuleConfig  = "config"
	ModuleCLI     = "tackle"
)

func at(module, operation string, code tkerror.Code) *ErrorBuilder {
	return NewErrorBuilder(module).Operation(operation).Code(code)
}

// InvalidInput reports an argument that does not meet expected
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return at(module, operation, tkerror.CodeInvalidInput).
		Messagef("invalid input for %s.%s", module, operation).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports text that is not in expectedFormat
func InvalidFormat(module string, input interface{}, expectedFormat string) *tkerror.Error {
	return at(module, "", tkerror.CodeInvalidFormat).
		Messagef("invalid format in %s", module).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed reports an internal failure caused by cause
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	return at(module, operation, tkerror.CodeInternal).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Build()
}

// OutOfRange reports a value outside [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *tkerror.Error {
	return at(module, operation, tkerror.CodeValueOutOfRange).
		Messagef("value %v out of range [%v, %v]", value, min, max).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound reports a missing item
func NotFound(module, operation string, identifier interface{}) *tkerror.Error {
	return at(module, operation, tkerror.CodeNotFound).
		Messagef("%v not found", identifier).
		Detail("identifier", identifier).
		Build()
}

// URLParse reports a string that does not resolve to an absolute URL
func URLParse(operation, rawURL string, cause error) *tkerror.Error {
	return at(ModuleURLx, operation, tkerror.CodeURLParse).
		Messagef("cannot resolve %q to an absolute URL", rawURL).
		Cause(cause).
		Detail("url", rawURL).
		Build()
}

// Environment reports a missing ambient resource such as a default URL
func Environment(module, operation, missing string) *tkerror.Error {
	return at(module, operation, tkerror.CodeEnvironmentError).
		Messagef("%s is not available in this environment", missing).
		Detail("missing", missing).
		Build()
}

func detail(err error, key string) string {
	var e *tkerror.Error
	if !errors.As(err, &e) {
		return ""
	}
	s, _ := e.Details()[key].(string)
	return s
}

// ExtractModule returns the module recorded on err, or ""
func ExtractModule(err error) string { return detail(err, "module") }

// ExtractOperation returns the operation recorded on err, or ""
func ExtractOperation(err error) string { return detail(err, "operation") }

// IsModuleError reports whether err was raised by module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsModuleOperation reports whether err was raised by module in operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// Describe renders err as "module.operation: message" when the module is
// known and as err.Error() otherwise
func Describe(err error) string {
	if err == nil {
		return ""
	}
	module := ExtractModule(err)
	if module == "" {
		return err.Error()
	}
	if op := ExtractOperation(err); op != "" {
		module += "." + op
	}
	return fmt.Sprintf("%s: %s", module, err.Error())
}
