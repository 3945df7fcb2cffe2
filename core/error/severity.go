// File: severity.go
// Title: Error Severity Levels
// Description: How serious an error is. Loggers map severity to a level.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Defaults moved to the code table

package error

// Severity orders errors from correctable input to a broken environment
type Severity int

const (
	SeverityLow      Severity = iota // caller can fix the input
	SeverityMedium                   // default
	SeverityHigh                     // operation cannot continue
	SeverityCritical                 // runtime environment unusable
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// AtLeast reports whether s is as serious as other or more
func (s Severity) AtLeast(other Severity) bool { return s >= other }
