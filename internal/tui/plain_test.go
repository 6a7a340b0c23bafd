// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abreast/internal/progress"
)

func TestRunPlainPrintsTerminalEventsOnly(t *testing.T) {
	reporter := progress.NewChannelReporter(8)

	reporter.Report(progress.Event{Index: 0, Label: "go vet ./...", Type: progress.EventStarted})
	reporter.Report(progress.Event{Index: 0, Label: "go vet ./...", Type: progress.EventCompleted})
	reporter.Report(progress.Event{Index: 1, Label: "false", Type: progress.EventStarted})
	reporter.Report(progress.Event{Index: 1, Label: "false", Type: progress.EventFailed, ExitCode: 1})
	reporter.Close()

	buf := &bytes.Buffer{}
	RunPlain(buf, reporter.Events())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2, "one line per terminal event")
	assert.Contains(t, lines[0], "go vet ./...")
	assert.Contains(t, lines[0], "OK")
	assert.Contains(t, lines[1], "false")
	assert.Contains(t, lines[1], "FAILED")
}

func TestRunPlainEmptyBatch(t *testing.T) {
	reporter := progress.NewChannelReporter(1)
	reporter.Close()

	buf := &bytes.Buffer{}
	RunPlain(buf, reporter.Events())

	assert.Empty(t, buf.String())
}
