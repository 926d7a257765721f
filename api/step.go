package api

import "time"

// StepStatus is the terminal state of a single build step
type StepStatus string

const (
	StatusSucceeded StepStatus = "succeeded"
	StatusFailed    StepStatus = "failed"
	StatusSkipped   StepStatus = "skipped"
)

// StepResult records the outcome of one executed (or skipped) build step
type StepResult struct {
	Step     string
	Status   StepStatus
	Duration time.Duration
}

// HasSucceededStatus returns true when no step in the run failed
func HasSucceededStatus(results []StepResult) bool {
	for _, r := range results {
		if r.Status == StatusFailed {
			return false
		}
	}
	return true
}

// GetAggregatedStatus returns the overall status for a finished run
func GetAggregatedStatus(results []StepResult) StepStatus {
	if HasSucceededStatus(results) {
		return StatusSucceeded
	}
	return StatusFailed
}
