// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress provides lifecycle events for job execution. Workers
// emit an event when a job starts and when it reaches a terminal state;
// renderers that cannot repaint the screen consume these events to print
// each job's final line as it completes.
package progress
