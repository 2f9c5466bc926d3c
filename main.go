/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/cmd"
	"github.com/humaidq/medreport/logging"
)

func main() {
	logging.Init()

	app := &cli.Command{
		Name:  "medreport",
		Usage: "Medical report analysis",
		Flags: cmd.GlobalFlags,
		Commands: []*cli.Command{
			cmd.CmdAnalyze,
			cmd.CmdShow,
			cmd.CmdServe,
			cmd.CmdMigrate,
			cmd.CmdTypes,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.Logger(logging.SourceApp).Fatal("Command failed", "error", err)
	}
}
