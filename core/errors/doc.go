// Package errors provides module-scoped constructors on top of core/error.
//
// Package: errors
// Title: Shared Error Builders
// Description: Every utility package reports failures with the module name
//              and operation attached as details, so callers can tell which
//              helper rejected an input without parsing messages.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation of shared error builders
// - 2026-10-14 v0.2.0: URL codec module and URL_PARSE helper
package errors
