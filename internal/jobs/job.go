// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package jobs

import (
	"bytes"
	"strings"
)

// MaxCaptureSize is the per-stream capture limit for a single job.
// Output beyond this is discarded and the truncation is noted in the
// final report.
const MaxCaptureSize = 8 * 1024 * 1024 // 8MB

// job is one command plus its tracked state. All fields after argv are
// guarded by the owning Table's lock and must only be accessed through it.
type job struct {
	index    int
	label    string
	argv     []string
	status   Status
	exitCode int
	err      error
	stdout   capture
	stderr   capture
}

func newJob(index int, argv []string) *job {
	return &job{
		index:  index,
		label:  strings.Join(argv, " "),
		argv:   argv,
		status: StatusPending,
	}
}

// Line is the render snapshot of a single job: everything the live
// display needs and nothing it doesn't.
type Line struct {
	Label    string
	Status   Status
	ExitCode int
}

// Record is a full copy of a job's final state, used by the reporter.
type Record struct {
	Index           int
	Label           string
	Argv            []string
	Status          Status
	ExitCode        int
	Err             error
	Stdout          []byte
	Stderr          []byte
	StdoutTruncated bool
	StderrTruncated bool
}

// Failed reports whether the job ended in StatusFailed.
func (r Record) Failed() bool {
	return r.Status == StatusFailed
}

// capture accumulates stream output up to MaxCaptureSize.
type capture struct {
	buf       bytes.Buffer
	truncated bool
}

func (c *capture) append(p []byte) {
	room := MaxCaptureSize - c.buf.Len()
	if room <= 0 {
		c.truncated = true
		return
	}

	if len(p) > room {
		p = p[:room]
		c.truncated = true
	}

	c.buf.Write(p)
}

func (c *capture) appendString(s string) {
	c.append([]byte(s))
}

func (c *capture) bytes() []byte {
	out := make([]byte, c.buf.Len())
	copy(out, c.buf.Bytes())

	return out
}
