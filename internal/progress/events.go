// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event is a real-time update about a single job.
type Event struct {
	Index     int       // Stable input-order index of the job
	Label     string    // Human-readable command text
	Type      EventType // What happened
	ExitCode  int       // Exit code, for terminal events
	Err       error     // Error, for EventFailed
	Timestamp time.Time // When the event occurred
}

// EventType represents the type of progress event.
type EventType int

const (
	// EventStarted indicates the job's process has been spawned.
	EventStarted EventType = iota
	// EventCompleted indicates the job succeeded.
	EventCompleted
	// EventFailed indicates the job failed.
	EventFailed
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the event ends a job's lifecycle.
func (et EventType) Terminal() bool {
	return et == EventCompleted || et == EventFailed
}

// Reporter is the interface workers use to emit progress events.
// Implementations must be safe for concurrent use and must not block.
type Reporter interface {
	// Report sends a progress event. Implementations should handle the
	// case where the receiver is not listening.
	Report(event Event)
	// Close signals that no more events will be sent.
	Close()
}

// NullReporter is a no-op Reporter, used when nobody consumes events.
type NullReporter struct{}

// Report implements Reporter.Report by doing nothing.
func (nr *NullReporter) Report(_ Event) {}

// Close implements Reporter.Close by doing nothing.
func (nr *NullReporter) Close() {}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() Reporter {
	return &NullReporter{}
}
