// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package jobs

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrReadInput is returned when the input stream cannot be read.
var ErrReadInput = errors.New("failed to read input")

// Parse reads newline-separated command lines until end of stream and
// returns a Table with one pending job per non-empty line. Lines are
// split on whitespace into tokens with no quoting or escaping; blank
// lines do not create a job.
func Parse(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)

	var argvs [][]string

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		argvs = append(argvs, fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadInput, err)
	}

	return New(argvs), nil
}
