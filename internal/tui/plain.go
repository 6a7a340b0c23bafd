// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"io"

	"abreast/internal/color"
	"abreast/internal/progress"
)

// RunPlain is the degraded renderer for output targets that cannot
// reposition the cursor. It prints each job's final line once, in
// completion order, with no animation, and returns when the event
// channel is closed.
func RunPlain(w io.Writer, events <-chan progress.Event) {
	for ev := range events {
		if !ev.Type.Terminal() {
			continue
		}

		marker := color.Colorize("OK", color.FgGreen)
		if ev.Type == progress.EventFailed {
			marker = color.Colorize("FAILED", color.FgRed)
		}

		fmt.Fprintf(w, "%s: %s\n", ev.Label, marker) //nolint:errcheck
	}
}
