// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	assert.Equal(t, "\033[31m", Sequence(FgRed))
	assert.Equal(t, "\033[0m", Sequence(Reset))
	assert.Equal(t, "\033[1;32m", Sequence(Bold, FgGreen))
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Code
	}{
		{
			name: "no codes",
			in:   "plain text",
			want: nil,
		},
		{
			name: "single code",
			in:   "\033[31merror\033[0m",
			want: []Code{FgRed, Reset},
		},
		{
			name: "several codes",
			in:   "\033[32mok\033[0m and \033[33mwarn\033[0m",
			want: []Code{FgGreen, Reset, FgYellow, Reset},
		},
		{
			name: "multi parameter sequences are skipped",
			in:   "\033[1;31mbold red\033[0m",
			want: []Code{Reset},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Find(tc.in))
		})
	}
}
