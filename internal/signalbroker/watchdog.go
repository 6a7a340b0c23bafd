// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"abreast/internal/ctxlog"
)

const forcedExitCode = 130

// exit is replaced in tests.
var exit = os.Exit

// Watch monitors the signal channel. The first signal cancels the given
// context so that running jobs are stopped and their child processes
// terminated. A second signal exits the process without waiting.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	received := false

	for sig := range sigCh {
		if received {
			ctxlog.Error(ctx, "received second signal, exiting immediately", "signal", sig.String())
			exit(forcedExitCode)

			return
		}

		received = true

		ctxlog.Info(ctx, "received signal, stopping jobs", "signal", sig.String())
		cancel()
	}
}
