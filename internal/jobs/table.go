// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package jobs

import (
	"io"
	"sync"
)

// Table is the shared, fixed-size collection of jobs for one batch run.
// It is created once from the parsed input; jobs are never added or
// removed afterwards. A single lock guards the whole table: writers never
// contend with each other (each worker owns exactly one job), so the lock
// only serializes a worker's writes against renderer and reporter reads.
type Table struct {
	mu   sync.RWMutex
	jobs []*job
}

// New creates a Table with one pending job per argv. Each argv must have
// at least one token; Parse guarantees this for stdin input.
func New(argvs [][]string) *Table {
	t := &Table{
		jobs: make([]*job, 0, len(argvs)),
	}

	for i, argv := range argvs {
		t.jobs = append(t.jobs, newJob(i, argv))
	}

	return t
}

// Len returns the number of jobs in the table.
func (t *Table) Len() int {
	return len(t.jobs)
}

// Argv returns a copy of the command tokens for the job at index i.
func (t *Table) Argv(i int) []string {
	argv := make([]string, len(t.jobs[i].argv))
	copy(argv, t.jobs[i].argv)

	return argv
}

// Label returns the display label for the job at index i.
func (t *Table) Label(i int) string {
	return t.jobs[i].label
}

// MarkRunning transitions the job at index i from pending to running.
// Any other transition is ignored.
func (t *Table) MarkRunning(i int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.jobs[i].status != StatusPending {
		return
	}

	t.jobs[i].status = StatusRunning
}

// Finish records the process exit for the job at index i. The job
// succeeds iff the exit code is zero and no execution error occurred.
// Terminal states are sticky: a second call is ignored.
func (t *Table) Finish(i, exitCode int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	j := t.jobs[i]
	if j.status.Terminal() {
		return
	}

	j.exitCode = exitCode
	j.err = err

	if exitCode == 0 && err == nil {
		j.status = StatusSucceeded
		return
	}

	j.status = StatusFailed
}

// Fail marks the job at index i failed without a process exit code, e.g.
// when the process could not be spawned. The error text substitutes for
// the job's stderr capture.
func (t *Table) Fail(i int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	j := t.jobs[i]
	if j.status.Terminal() {
		return
	}

	j.exitCode = -1
	j.err = err

	if err != nil {
		j.stderr.appendString(err.Error() + "\n")
	}

	j.status = StatusFailed
}

// AppendStdout appends bytes to the stdout capture of the job at index i.
func (t *Table) AppendStdout(i int, p []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.jobs[i].stdout.append(p)
}

// AppendStderr appends bytes to the stderr capture of the job at index i.
func (t *Table) AppendStderr(i int, p []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.jobs[i].stderr.append(p)
}

// StdoutWriter returns an io.Writer that appends to the job's stdout
// capture. Writes never fail; overflow beyond MaxCaptureSize is dropped.
func (t *Table) StdoutWriter(i int) io.Writer {
	return &streamWriter{table: t, index: i}
}

// StderrWriter returns an io.Writer that appends to the job's stderr
// capture.
func (t *Table) StderrWriter(i int) io.Writer {
	return &streamWriter{table: t, index: i, stderr: true}
}

// Status returns the current status of the job at index i.
func (t *Table) Status(i int) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.jobs[i].status
}

// Snapshot returns a consistent per-job view for rendering, in input
// order.
func (t *Table) Snapshot() []Line {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lines := make([]Line, 0, len(t.jobs))

	for _, j := range t.jobs {
		lines = append(lines, Line{
			Label:    j.label,
			Status:   j.status,
			ExitCode: j.exitCode,
		})
	}

	return lines
}

// Records returns full copies of every job's state, in input order.
// Intended for the final report once all jobs are terminal.
func (t *Table) Records() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()

	records := make([]Record, 0, len(t.jobs))

	for _, j := range t.jobs {
		argv := make([]string, len(j.argv))
		copy(argv, j.argv)

		records = append(records, Record{
			Index:           j.index,
			Label:           j.label,
			Argv:            argv,
			Status:          j.status,
			ExitCode:        j.exitCode,
			Err:             j.err,
			Stdout:          j.stdout.bytes(),
			Stderr:          j.stderr.bytes(),
			StdoutTruncated: j.stdout.truncated,
			StderrTruncated: j.stderr.truncated,
		})
	}

	return records
}

// AllDone reports whether every job has reached a terminal status.
func (t *Table) AllDone() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, j := range t.jobs {
		if !j.status.Terminal() {
			return false
		}
	}

	return true
}

// Failed reports whether any job ended in StatusFailed.
func (t *Table) Failed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, j := range t.jobs {
		if j.status == StatusFailed {
			return true
		}
	}

	return false
}

type streamWriter struct {
	table  *Table
	index  int
	stderr bool
}

// Write implements io.Writer. It always reports the full length as
// written so that draining the child's pipe never stalls.
func (w *streamWriter) Write(p []byte) (int, error) {
	if w.stderr {
		w.table.AppendStderr(w.index, p)
	} else {
		w.table.AppendStdout(w.index, p)
	}

	return len(p), nil
}
