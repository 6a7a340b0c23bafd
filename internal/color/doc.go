// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI SGR color helpers for terminal output.
// Color output is enabled when stdout is a terminal, can be disabled with
// the NO_COLOR environment variable and forced with FORCE_COLOR.
package color
