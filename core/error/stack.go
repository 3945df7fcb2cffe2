// File: stack.go
// Title: Stack Capture
// Description: Call stacks recorded when an error is created.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: runtime.CallersFrames, inlined frames resolved

package error

import (
	"fmt"
	"runtime"
	"strings"
)

// MaxStackFrames limits how many frames an error records
const MaxStackFrames = 20

// Frame is one resolved call site
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Stack lists frames innermost first
type Stack []Frame

// String renders one frame per line as function then file:line
func (s Stack) String() string {
	var b strings.Builder
	for _, f := range s {
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}

// callers records the stack above its caller; skip drops further frames
func callers(skip int) Stack {
	var pcs [MaxStackFrames]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make(Stack, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return stack
}
