// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the abreast command-line application.
package main

import (
	"context"
	"fmt"
	"os"

	"abreast"
	"abreast/cmd"
	"abreast/internal/ctxlog"
	"abreast/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", abreast.Version, abreast.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
