// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui renders the live status of a batch run: one terminal line
// per job, repainted on every animation tick from a snapshot of the job
// table. Running jobs show a spinner, finished jobs a fixed OK or FAILED
// marker. The loop ends with a final redraw once every job is terminal.
//
// Frame construction is a pure function of the snapshot and the spinner
// frame; the bubbletea program is the only place with terminal side
// effects. RunPlain is the degraded renderer for output targets that
// cannot reposition the cursor.
package tui
