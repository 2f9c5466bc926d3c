// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/llm"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	app := &cli.Command{
		Name:     "medreport",
		Flags:    GlobalFlags,
		Commands: []*cli.Command{CmdAnalyze, CmdShow, CmdMigrate, CmdTypes},
		Writer:   &out,
		ExitErrHandler: func(context.Context, *cli.Command, error) {
		},
	}

	err := app.Run(context.Background(), append([]string{"medreport"}, args...))

	return out.String(), err
}

// The CLI commands are package-level values, so these tests run serially.
//
//nolint:paralleltest // Shares command state and environment.
func TestAnalyzeCommand(t *testing.T) {
	t.Setenv("OLLAMA_URL", "http://127.0.0.1:1")
	t.Setenv("OLLAMA_MODEL", "test-model")

	t.Run("requires files", func(t *testing.T) {
		_, err := runApp(t, "analyze", "--patient", "p1")
		if !errors.Is(err, errNoInputFiles) {
			t.Fatalf("expected errNoInputFiles, got %v", err)
		}
	})

	dir := t.TempDir()
	bogus := filepath.Join(dir, "scan.pdf")

	if err := os.WriteFile(bogus, []byte("not a pdf"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	t.Run("reports extraction failure", func(t *testing.T) {
		out, err := runApp(t, "--store", "memory", "analyze", "--patient", "p1", "--type", "cbc", bogus)
		if !errors.Is(err, errAnalysisFailed) {
			t.Fatalf("expected errAnalysisFailed, got %v", err)
		}

		var summary analysis.AnalysisSummary
		if err := json.Unmarshal([]byte(out), &summary); err != nil {
			t.Fatalf("decode output %q: %v", out, err)
		}

		if summary.Status != analysis.StatusError || summary.Message != analysis.MsgExtractionFailed {
			t.Fatalf("unexpected summary %+v", summary)
		}
	})

	t.Run("single file flags", func(t *testing.T) {
		_, err := runApp(t, "analyze", "--patient", "p1", "--report-id", "r1", bogus, bogus)
		if !errors.Is(err, errSingleFileOnly) {
			t.Fatalf("expected errSingleFileOnly, got %v", err)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := runApp(t, "analyze", "--patient", "p1", filepath.Join(dir, "missing.pdf"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

//nolint:paralleltest // Shares command state.
func TestShowCommand(t *testing.T) {
	t.Run("requires patient", func(t *testing.T) {
		_, err := runApp(t, "show")
		if !errors.Is(err, errPatientRequired) {
			t.Fatalf("expected errPatientRequired, got %v", err)
		}
	})

	t.Run("memory store cannot answer", func(t *testing.T) {
		_, err := runApp(t, "--store", "memory", "show", "--patient", "p1", "--report", "r1")
		if !errors.Is(err, errDurableStoreRequired) {
			t.Fatalf("expected errDurableStoreRequired, got %v", err)
		}
	})

	t.Run("unknown store", func(t *testing.T) {
		_, err := runApp(t, "--store", "sqlite", "show", "--patient", "p1", "--report", "r1")
		if err == nil {
			t.Fatal("expected error for unknown store backend")
		}
	})
}

//nolint:paralleltest // Modifies environment.
func TestMigrateRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := runApp(t, "migrate", "status")
	if !errors.Is(err, errDatabaseURLRequired) {
		t.Fatalf("expected errDatabaseURLRequired, got %v", err)
	}
}

//nolint:paralleltest // Shares command state and environment.
func TestAnalyzeRejectsInvalidThresholds(t *testing.T) {
	t.Setenv("OLLAMA_URL", "http://127.0.0.1:1")
	t.Setenv("OLLAMA_MODEL", "test-model")

	file := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(file, []byte("not a pdf"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := runApp(t, "--low-margin", "1.5", "analyze", "--patient", "p1", file)
	if !errors.Is(err, errInvalidPolicy) {
		t.Fatalf("expected errInvalidPolicy, got %v", err)
	}

	_, err = runApp(t, "--low-margin", "0.8", "analyze", "--patient", "p1", file)
	if !errors.Is(err, errAnalysisFailed) {
		t.Fatalf("expected errAnalysisFailed with valid thresholds, got %v", err)
	}
}

func TestPolicyFromFlagsDefaults(t *testing.T) {
	t.Parallel()

	var got analysis.Policy

	app := &cli.Command{
		Name:  "medreport",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "high-margin", Value: analysis.OneSidedHighMargin},
			&cli.FloatFlag{Name: "low-margin", Value: analysis.OneSidedLowMargin},
			&cli.FloatFlag{Name: "max-deviation", Value: analysis.DeviationThreshold},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			p, err := policyFromFlags(cmd)
			got = p

			return err
		},
	}

	if err := app.Run(context.Background(), []string{"medreport", "--max-deviation", "0.3"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := analysis.Policy{HighMargin: 1.2, LowMargin: 0.8, MaxDeviation: 0.3}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

//nolint:paralleltest // Shares command state.
func TestTypesCommand(t *testing.T) {
	out, err := runApp(t, "types")
	if err != nil {
		t.Fatalf("types failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(llm.ReportTypes()) {
		t.Fatalf("expected %d lines, got %d", len(llm.ReportTypes()), len(lines))
	}

	if !strings.Contains(out, "cbc\tComplete Blood Count (CBC)\n") {
		t.Fatalf("expected cbc label in output, got %q", out)
	}
}
