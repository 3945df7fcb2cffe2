// Package log provides structured logging for the Tackle library and CLI.
//
// Package: log
// Title: Tackle Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Loggers are immutable: every With* method
//              returns a configured copy, so a logger can be shared between
//              goroutines and specialised per component.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Stable field order in all formatters, stderr default
//
// Usage:
//
//	import tklog "github.com/hrimthurs/Tackle/core/log"
//
//	logger := tklog.New().
//		WithLevel(tklog.LevelDebug).
//		WithFormat(tklog.FormatText).
//		WithName("urlx")
//
//	logger.Debug("query skipped", tklog.String("url", raw), tklog.Err(err))
//	logger.LogError(err) // level chosen from the error severity
package log
