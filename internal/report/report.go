// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"abreast/internal/color"
	"abreast/internal/jobs"
)

// Options controls what is included in the report.
type Options struct {
	IncludeStdout      bool // Whether to include captured stdout
	IncludeStderr      bool // Whether to include captured stderr
	ShowSuccessDetails bool // Whether to show output for successful jobs too
}

// DefaultOptions returns the default report options: both streams, for
// failed jobs only.
func DefaultOptions() *Options {
	return &Options{
		IncludeStdout: true,
		IncludeStderr: true,
	}
}

// Failed reports whether any job in the batch failed. The process exit
// code is zero iff this returns false.
func Failed(records []jobs.Record) bool {
	for _, r := range records {
		if r.Failed() {
			return true
		}
	}

	return false
}

// Write prints the final report to w: one summary line per job in input
// order, then the captured streams of each failed job, each clearly
// attributed to its originating command.
func Write(w io.Writer, records []jobs.Record, options *Options) error {
	if options == nil {
		options = DefaultOptions()
	}

	for _, r := range records {
		writeSummary(w, r)

		if !r.Failed() && !options.ShowSuccessDetails {
			continue
		}

		writeDetails(w, r, options)
	}

	return nil
}

func writeSummary(w io.Writer, r jobs.Record) {
	var marker string

	switch r.Status {
	case jobs.StatusSucceeded:
		marker = color.Colorize("OK", color.FgGreen)
	case jobs.StatusFailed:
		marker = color.Colorize("FAILED", color.FgRed)
	default:
		// Only terminal states reach the reporter.
		marker = color.Colorize(r.Status.String(), color.FgHiBlack)
	}

	fmt.Fprintf(w, "%s: %s", r.Label, marker) //nolint:errcheck

	if r.Failed() {
		fmt.Fprintf(w, " (exit code: %d)", r.ExitCode) //nolint:errcheck
	}

	fmt.Fprintln(w) //nolint:errcheck
}

func writeDetails(w io.Writer, r jobs.Record, options *Options) {
	if r.Err != nil {
		fmt.Fprintf(w, "  %s %s\n", color.Colorize("➜ Error:", color.FgRed), r.Err.Error()) //nolint:errcheck
	}

	if options.IncludeStdout && len(r.Stdout) > 0 {
		fmt.Fprintf(w, "  %s\n", "➜ Output:") //nolint:errcheck
		writeQuoted(w, r.Stdout, r.StdoutTruncated)
	}

	if options.IncludeStderr && len(r.Stderr) > 0 {
		fmt.Fprintf(w, "  %s\n", color.Colorize("➜ Error Output:", color.FgHiRed)) //nolint:errcheck
		writeQuoted(w, r.Stderr, r.StderrTruncated)
	}
}

// writeQuoted prints captured output verbatim, each line behind a "│ "
// gutter. The gutter takes the color of the line's own ANSI codes: none
// leaves it unstyled, exactly one adopts that color, several turn it
// yellow.
func writeQuoted(w io.Writer, output []byte, truncated bool) {
	text := strings.TrimSuffix(string(output), "\n")

	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "  %s %s\n", gutter(line), line) //nolint:errcheck
	}

	if truncated {
		note := fmt.Sprintf("(output truncated at %d bytes)", jobs.MaxCaptureSize)
		fmt.Fprintf(w, "  %s %s\n", gutter(""), color.Colorize(note, color.FgHiBlack)) //nolint:errcheck
	}
}

func gutter(line string) string {
	codes := color.Find(line)

	switch len(codes) {
	case 0:
		return "│"
	case 1:
		return color.Colorize("│", codes[0])
	default:
		return color.Colorize("│", color.FgYellow)
	}
}
