// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS termination signals and maps them to
// context cancellation. The first signal cancels the run context, which
// terminates all running child processes; a second signal exits the process
// immediately.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"abreast/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a channel that receives the OS signals that should stop the
// batch. If no signals are given, the default termination set is used.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}
