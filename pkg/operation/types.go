// Package operation executes parsed tree operations against a filesystem
// adapter and drives the indentation-driven run loop.
package operation

import (
	"fmt"
)

// 🎯 Status classifies how a single operation ended.
type Status int

const (
	// StatusCreated means the entry was created (or copied/moved) this run
	StatusCreated Status = iota
	// StatusSkipped means something already existed and was left untouched
	StatusSkipped
	// StatusFallback means the operation failed and an empty file was left
	// at the target instead
	StatusFallback
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	case StatusFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// 📦 Result is the outcome of executing one operation. Warning is non-nil
// exactly when the fallback policy fired.
type Result struct {
	Path    string
	Status  Status
	Warning error
}

// ⚠️ Warning records one recovered per-line failure.
type Warning struct {
	Line int    // 1-based input line number
	Path string // target path the line resolved to
	Err  error
}

// String formats the warning for console output.
func (w Warning) String() string {
	return fmt.Sprintf("line %d (%s): %v", w.Line, w.Path, w.Err)
}

// 📊 Report is the aggregate outcome of one run. A run either completes
// cleanly or completes with warnings; it never aborts mid-input.
type Report struct {
	Lines    int // non-blank lines processed
	Executed int // operations that reached the executor
	Warnings []Warning
}

// OK reports whether the run completed without any warnings.
func (r *Report) OK() bool {
	return len(r.Warnings) == 0
}
