// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
	"time"

	"abreast/internal/ctxlog"
	"abreast/internal/jobs"
	"abreast/internal/progress"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToDrainOutput is returned when a job's output stream could not be read.
	ErrFailedToDrainOutput = errors.New("failed to drain output")
)

// Start launches one worker goroutine per job in the table and returns
// immediately. The returned channel is closed once every job has reached
// a terminal state. Cancelling the context kills all running child
// processes; the affected jobs finish as failed.
func Start(ctx context.Context, table *jobs.Table, reporter progress.Reporter) <-chan struct{} {
	done := make(chan struct{})
	wg := &sync.WaitGroup{}

	for i := range table.Len() {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			runJob(ctx, table, reporter, i)
		}(i)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	return done
}

// runJob owns the lifecycle of exactly one job.
func runJob(ctx context.Context, table *jobs.Table, reporter progress.Reporter, index int) {
	label := table.Label(index)
	argv := table.Argv(index)
	logger := ctxlog.Logger(ctx).
		With("index", index).
		With("job", label)

	table.MarkRunning(index)
	reporter.Report(progress.Event{
		Index:     index,
		Label:     label,
		Type:      progress.EventStarted,
		Timestamp: time.Now(),
	})

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		failJob(table, reporter, index, label, errors.Join(ErrCouldNotStartProcess, err))
		return
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		failJob(table, reporter, index, label, errors.Join(ErrCouldNotStartProcess, err))
		return
	}

	logger.Debug("starting process", "argv", argv)

	if err := cmd.Start(); err != nil {
		failJob(table, reporter, index, label, errors.Join(ErrCouldNotStartProcess, err))
		return
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	// Drain both streams concurrently so the child can never block on a
	// full pipe while the other stream goes unread.
	drainWg := sync.WaitGroup{}
	drainWg.Add(2)

	var outErr, errErr error

	go func() {
		defer drainWg.Done()

		_, outErr = io.Copy(table.StdoutWriter(index), stdout)
	}()

	go func() {
		defer drainWg.Done()

		_, errErr = io.Copy(table.StderrWriter(index), stderr)
	}()

	drainWg.Wait()

	waitErr := cmd.Wait()
	exitCode := cmd.ProcessState.ExitCode()

	logger.Debug("process finished", "exitCode", exitCode)

	var execErr error

	var exitErr *exec.ExitError

	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		// A nonzero exit is a normal terminal outcome, not an execution
		// error. A negative code means the process was killed by a
		// signal, e.g. on context cancellation; keep the cause.
		if exitCode < 0 {
			execErr = waitErr
		}
	default:
		execErr = waitErr
	}

	if drainErr := errors.Join(outErr, errErr); drainErr != nil {
		execErr = errors.Join(execErr, ErrFailedToDrainOutput, drainErr)
	}

	table.Finish(index, exitCode, execErr)

	eventType := progress.EventCompleted
	if table.Status(index) == jobs.StatusFailed {
		eventType = progress.EventFailed
	}

	reporter.Report(progress.Event{
		Index:     index,
		Label:     label,
		Type:      eventType,
		ExitCode:  exitCode,
		Err:       execErr,
		Timestamp: time.Now(),
	})
}

// failJob records a spawn failure. The error text substitutes for the
// job's stderr capture and the other jobs keep running.
func failJob(table *jobs.Table, reporter progress.Reporter, index int, label string, err error) {
	table.Fail(index, err)

	reporter.Report(progress.Event{
		Index:     index,
		Label:     label,
		Type:      progress.EventFailed,
		ExitCode:  -1,
		Err:       err,
		Timestamp: time.Now(),
	})
}
