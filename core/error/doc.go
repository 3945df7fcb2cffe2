// Package error provides structured error handling for the Tackle library.
//
// Package: error
// Title: Tackle Error Handling
// Description: Structured errors with codes, severity, operation context,
//              details and stack traces. Every package of the library
//              reports failures through this type so that callers can
//              branch on Code() instead of matching message text.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with codes and severity
// - 2026-10-14 v0.2.0: URL codec codes (URL_PARSE, ENVIRONMENT_ERROR)
//
// Usage:
//
//	import tkerror "github.com/hrimthurs/Tackle/core/error"
//
//	err := tkerror.New("cannot resolve URL").
//		WithCode(tkerror.CodeURLParse).
//		WithOperation("urlx.Encode").
//		WithDetail("url", raw)
//
//	if tkerror.HasCode(err, tkerror.CodeURLParse) {
//		// strict-write callers report the destination as invalid
//	}
package error
