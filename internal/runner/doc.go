// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner launches one worker goroutine per job and owns each
// job's full lifecycle: spawning the process with separate stdout and
// stderr pipes, draining both streams concurrently into the job table,
// and recording the terminal status when the process exits. Failures are
// local to a job; one command failing never stops the others.
package runner
