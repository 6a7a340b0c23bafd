// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"
)

// ChannelReporter implements Reporter on top of a buffered channel.
// Events are sent non-blocking: if the consumer falls behind and the
// buffer fills up, events are dropped rather than stalling a worker.
// The reporter's lifetime is independent of the run context; cancelling
// the batch must not stop delivery, as workers still emit the terminal
// events for their killed jobs. Only Close stops the reporter.
type ChannelReporter struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
}

// NewChannelReporter creates a ChannelReporter with the given buffer
// size. Size the buffer generously relative to the job count; a terminal
// event dropped here means a missing line in the plain renderer.
func NewChannelReporter(bufferSize int) *ChannelReporter {
	return &ChannelReporter{
		ch:   make(chan Event, bufferSize),
		done: make(chan struct{}),
	}
}

// Events returns the receive side of the reporter. The channel is closed
// by Close once no more events will be sent.
func (cr *ChannelReporter) Events() <-chan Event {
	return cr.ch
}

// Report implements Reporter.Report. It never blocks: events are dropped
// if the reporter is closed or the buffer is full.
func (cr *ChannelReporter) Report(event Event) {
	select {
	case <-cr.done:
		return
	default:
	}

	select {
	case cr.ch <- event:
	case <-cr.done:
	default:
	}
}

// Close implements Reporter.Close. It is safe to call multiple times.
func (cr *ChannelReporter) Close() {
	cr.once.Do(func() {
		close(cr.done)
		close(cr.ch)
	})
}
