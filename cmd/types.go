/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/llm"
)

var CmdTypes = &cli.Command{
	Name:   "types",
	Usage:  "List the known report types",
	Action: listTypes,
}

func listTypes(_ context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	for _, t := range llm.ReportTypes() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", t, llm.ReportLabel(t)); err != nil {
			return err
		}
	}

	return nil
}
