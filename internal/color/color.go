// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code is a single ANSI SGR parameter.
type Code int

// Text attributes.
const (
	Reset Code = iota
	Bold
	Faint
)

// Foreground colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Hi-intensity foreground colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix = "\033["
	suffix = "m"
)

var enabled bool

func init() {
	enabled = isColorEnabled()
}

// Enabled reports whether color output is active for this process.
func Enabled() bool {
	return enabled
}

// Sequence returns the raw SGR control sequence for the given codes.
// It does not consult Enabled; callers that need plain output should
// use Colorize instead.
func Sequence(codes ...Code) string {
	sb := strings.Builder{}
	sb.WriteString(prefix)

	for i, c := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(c)))
	}

	sb.WriteString(suffix)

	return sb.String()
}

// Colorize wraps str in the given codes and appends a reset.
// If color output is not enabled the string is returned unchanged.
func Colorize(str string, codes ...Code) string {
	if !enabled {
		return str
	}

	return Sequence(codes...) + str + Sequence(Reset)
}

var sgrPattern = regexp.MustCompile("\x1b\\[(\\d+)m")

// Find returns the single-parameter SGR codes present in s, in order of
// appearance. Multi-parameter sequences are not matched; the failure
// report gutter only cares about simple coloring.
func Find(s string) []Code {
	matches := sgrPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	codes := make([]Code, 0, len(matches))

	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		codes = append(codes, Code(n))
	}

	return codes
}

func isColorEnabled() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
