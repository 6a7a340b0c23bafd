// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package jobs defines the job model for a batch run: one Job per input
// command line, collected in a concurrency-safe Table. Each job's mutable
// state is written by exactly one worker and read by the renderer and the
// final reporter; the Table arbitrates those accesses so a reader never
// observes a half-updated job.
package jobs
