/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var CmdShow = &cli.Command{
	Name:  "show",
	Usage: "Print a stored analysis",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "patient",
			Usage: "patient identifier",
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "report identifier",
		},
	},
	Action: show,
}

func show(ctx context.Context, cmd *cli.Command) error {
	patientID := cmd.String("patient")
	if patientID == "" {
		return errPatientRequired
	}

	reportID := cmd.String("report")
	if reportID == "" {
		return errReportRequired
	}

	if isMemoryStore(cmd) {
		return errDurableStoreRequired
	}

	st, closeStore, err := openStore(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer closeStore()

	summary, ok := st.Load(ctx, patientID, reportID)
	if !ok {
		return fmt.Errorf("%w: %s/%s", errAnalysisNotFound, patientID, reportID)
	}

	return printJSON(cmd.Root().Writer, summary)
}
