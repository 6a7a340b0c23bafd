// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/goleak"
)

// runBatch runs the root command against the given stdin content and
// returns the combined stdout and the action error.
func runBatch(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}

	c := New()
	c.Reader = strings.NewReader(stdin)
	c.Writer = buf
	c.ErrWriter = buf
	c.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {
		// Keep cli.Exit from terminating the test process.
	}

	err := c.Run(context.Background(), append([]string{"abreast"}, args...))

	return buf.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	if err == nil {
		return 0
	}

	coder, ok := err.(cli.ExitCoder)
	require.True(t, ok, "expected an exit coder error, got %v", err)

	return coder.ExitCode()
}

func TestRun_EmptyInput(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "")
	require.NoError(t, err, "empty input must exit zero")
	assert.Empty(t, out, "no jobs, no lines")
}

func TestRun_BlankLinesOnly(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "\n   \n\t\n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_AllSucceed(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "/bin/true\n/bin/echo hello\n", "--plain")
	assert.Equal(t, 0, exitCode(t, err))

	assert.Contains(t, out, "/bin/true: OK")
	assert.Contains(t, out, "/bin/echo hello: OK")
	assert.NotContains(t, out, "FAILED")
}

func TestRun_FailureSetsExitCode(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "/bin/true\n/bin/false\n", "--plain")
	assert.Equal(t, 1, exitCode(t, err))

	assert.Contains(t, out, "/bin/true: OK")
	assert.Contains(t, out, "/bin/false: FAILED")
}

func TestRun_FailedJobOutputInReport(t *testing.T) {
	defer goleak.VerifyNone(t)

	// ls writes its complaint to stderr and exits nonzero. The input
	// line syntax has no quoting, so a plain command is used rather
	// than a shell snippet.
	out, err := runBatch(t, "ls /abreast-no-such-dir\n", "--plain")
	assert.Equal(t, 1, exitCode(t, err))

	assert.Contains(t, out, "➜ Error Output:")
	assert.Contains(t, out, "abreast-no-such-dir", "stderr must be shown verbatim in the report")
}

func TestRun_SpawnErrorDoesNotAbortOthers(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "/not/a/real/command\n/bin/echo still-ran\n", "--plain")
	assert.Equal(t, 1, exitCode(t, err))

	assert.Contains(t, out, "/not/a/real/command: FAILED")
	assert.Contains(t, out, "could not start process")
	assert.Contains(t, out, "/bin/echo still-ran: OK", "other jobs proceed despite the spawn failure")
}

func TestRun_ShowSuccessIncludesOutput(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "/bin/echo hello\n", "--plain", "--show-success")
	assert.Equal(t, 0, exitCode(t, err))

	assert.Contains(t, out, "│ hello")
}

func TestRun_TimeoutKillsBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "/bin/sleep 10\n", "--plain", "--timeout", "1")
	assert.Equal(t, 1, exitCode(t, err))

	assert.Contains(t, out, "/bin/sleep 10: FAILED")
}

func TestRun_TimeoutStillPrintsLiveLine(t *testing.T) {
	defer goleak.VerifyNone(t)

	out, err := runBatch(t, "/bin/sleep 10\n", "--plain", "--timeout", "1")
	assert.Equal(t, 1, exitCode(t, err))

	// The killed job gets both its live line and its report line; the
	// deadline must not swallow the terminal event behind the former.
	assert.Equal(t, 2, strings.Count(out, "/bin/sleep 10: FAILED"),
		"expected a live line and a report line for the killed job")
}

func TestRun_ReportOrderMatchesInputOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	// The middle job fails fast and the first finishes last; the final
	// report must still be in input order.
	out, err := runBatch(t, "/bin/sleep 0.3\n/bin/false\n/bin/true\n", "--plain")
	assert.Equal(t, 1, exitCode(t, err))

	// Each label appears once in the live section (completion order) and
	// once in the report; the last occurrences are the report lines.
	sleepIdx := strings.LastIndex(out, "/bin/sleep 0.3:")
	falseIdx := strings.LastIndex(out, "/bin/false:")
	trueIdx := strings.LastIndex(out, "/bin/true:")

	require.GreaterOrEqual(t, sleepIdx, 0)
	require.GreaterOrEqual(t, falseIdx, 0)
	require.GreaterOrEqual(t, trueIdx, 0)
	assert.Less(t, sleepIdx, falseIdx)
	assert.Less(t, falseIdx, trueIdx)
}
