// Copyright (c) the abreast authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/urfave/cli/v3"
)

const (
	plainFlag       = "plain"
	timeoutFlag     = "timeout"
	showSuccessFlag = "show-success"
)

// RootCmd is the root command for the CLI.
var RootCmd = New()

// New returns a fresh root command.
func New() *cli.Command {
	return &cli.Command{
		Name:      "abreast",
		Usage:     "ls commands.txt | abreast",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Description: `Abreast runs a batch of commands concurrently and shows each
command's live status on its own terminal line. Commands are read from
standard input, one per line, split on whitespace with no shell expansion;
blank lines are ignored. Once every command has finished, the captured
stdout and stderr of the failed ones are printed and the process exits
nonzero if any command failed.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        plainFlag,
				Usage:       "Disable the animated display and print each command's final status line as it completes",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.IntFlag{
				Name:    timeoutFlag,
				Aliases: []string{"t"},
				Usage: "Set the maximum time in seconds for the whole batch; " +
					"commands still running at the deadline are killed and reported as failed. 0 means no timeout.",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:        showSuccessFlag,
				Aliases:     []string{"success"},
				Usage:       "Include successful commands' captured output in the final report",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: actionFunc,
	}
}
