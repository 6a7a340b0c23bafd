// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package jobs

// Status represents the lifecycle state of a job. A job moves from
// StatusPending to StatusRunning to exactly one of StatusSucceeded or
// StatusFailed; terminal states are sticky.
type Status int

const (
	// StatusPending indicates the job has not been started yet.
	StatusPending Status = iota
	// StatusRunning indicates the job's process has been spawned.
	StatusRunning
	// StatusSucceeded indicates the process exited with code zero.
	StatusSucceeded
	// StatusFailed indicates the process exited nonzero, could not be
	// started, or its output could not be captured.
	StatusFailed
)

// String implements the Stringer interface for Status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}
