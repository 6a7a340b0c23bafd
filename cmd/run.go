// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"abreast/internal/ctxlog"
	"abreast/internal/jobs"
	"abreast/internal/progress"
	"abreast/internal/report"
	"abreast/internal/runner"
	"abreast/internal/tui"
)

// eventsPerJob sizes the progress buffer: one started and one terminal
// event per job, with headroom so nothing is dropped.
const eventsPerJob = 4

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	var in io.Reader = os.Stdin
	if cmd.Reader != nil {
		in = cmd.Reader
	}

	table, err := jobs.Parse(in)
	if err != nil {
		// The only process-fatal input condition: no commands could be
		// read at all.
		logger.Error("failed to read commands from stdin", "error", err)
		return cli.Exit("", 1)
	}

	if table.Len() == 0 {
		logger.Debug("no commands to run")
		return nil
	}

	logger.Debug("parsed commands", "count", table.Len())

	var runCtx context.Context

	var cancel context.CancelFunc

	if secs := cmd.Int(timeoutFlag); secs > 0 {
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(secs)*time.Second)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}

	defer cancel()

	reporter := progress.NewChannelReporter(table.Len() * eventsPerJob)

	done := runner.Start(runCtx, table, reporter)

	go func() {
		<-done
		reporter.Close()
	}()

	live := !cmd.Bool(plainFlag) && isTerminal(cmd.Writer)

	if live {
		if err := tui.Run(cmd.Writer, table, cancel); err != nil {
			// Never fatal: degrade to sequential output.
			logger.Warn("live renderer unavailable, falling back to plain output", "error", err)

			live = false
		}
	}

	if !live {
		tui.RunPlain(cmd.Writer, reporter.Events())
	}

	<-done

	records := table.Records()

	opts := report.DefaultOptions()
	opts.ShowSuccessDetails = cmd.Bool(showSuccessFlag)

	if err := report.Write(cmd.Writer, records, opts); err != nil {
		logger.Error("failed to write report", "error", err)
		return cli.Exit("", 1)
	}

	if report.Failed(records) {
		return cli.Exit("", 1)
	}

	return nil
}

// isTerminal reports whether w is a terminal that supports cursor
// repositioning.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
