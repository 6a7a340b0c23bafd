// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package abreast provides the version and commit information for the
// abreast application.
package abreast

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
