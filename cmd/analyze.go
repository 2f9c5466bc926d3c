/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/llm"
	"github.com/humaidq/medreport/store"
)

var CmdAnalyze = &cli.Command{
	Name:      "analyze",
	Usage:     "Analyze one or more report PDFs",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "type",
			Value: "custom",
			Usage: "report type (e.g., cbc, lipid_profile)",
		},
		&cli.StringFlag{
			Name:     "patient",
			Required: true,
			Usage:    "patient identifier",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "report date",
		},
		&cli.StringFlag{
			Name:  "report-id",
			Usage: "report identifier (defaults to the file name)",
		},
		&cli.StringFlag{
			Name:  "export",
			Usage: "write the summary as JSON to this file",
		},
	},
	Action: analyze,
}

func analyze(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errNoInputFiles
	}

	if len(files) > 1 && (cmd.String("report-id") != "" || cmd.String("export") != "") {
		return errSingleFileOnly
	}

	reqs, err := buildRequests(cmd, files)
	if err != nil {
		return err
	}

	if isMemoryStore(cmd) {
		appLogger.Warn("Using the memory store; analyses are not kept after exit", "hint", "--store postgres|redis")
	}

	if !llm.IsKnownReportType(cmd.String("type")) {
		appLogger.Warn("Unknown report type, using the generic label", "type", cmd.String("type"), "known", strings.Join(llm.ReportTypes(), ","))
	}

	st, closeStore, err := openStore(ctx, cmd, false)
	if err != nil {
		return err
	}
	defer closeStore()

	engine, err := newEngine(ctx, cmd, st)
	if err != nil {
		return err
	}

	summaries := engine.AnalyzeAll(ctx, reqs)

	if export := cmd.String("export"); export != "" {
		sink := store.DirSink{Dir: filepath.Dir(export)}
		if err := store.Export(summaries[0], filepath.Base(export), sink); err != nil {
			return err
		}
	}

	if err := writeSummaries(cmd, summaries); err != nil {
		return err
	}

	for _, s := range summaries {
		if !s.Succeeded() {
			return errAnalysisFailed
		}
	}

	return nil
}

func buildRequests(cmd *cli.Command, files []string) ([]analysis.Request, error) {
	reqs := make([]analysis.Request, 0, len(files))

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		reqs = append(reqs, analysis.Request{
			Document:   analysis.Document{Name: filepath.Base(path), Data: data},
			ReportType: cmd.String("type"),
			PatientID:  cmd.String("patient"),
			ReportDate: cmd.String("date"),
			ReportID:   cmd.String("report-id"),
		})
	}

	return reqs, nil
}

func writeSummaries(cmd *cli.Command, summaries []analysis.AnalysisSummary) error {
	if len(summaries) == 1 {
		return printJSON(cmd.Root().Writer, summaries[0])
	}

	return printJSON(cmd.Root().Writer, summaries)
}
