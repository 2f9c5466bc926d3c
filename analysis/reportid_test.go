// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package analysis

import "testing"

func TestReportID(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"CBC Report.pdf":             "cbc_report.pdf",
		"  Lipid   Panel  2024.PDF ": "lipid_panel_2024.pdf",
		"Análisis Sangre.pdf":        "análisis_sangre.pdf",
		"An\u0303o.pdf":              "a\u00f1o.pdf",
		"report/../../etc.pdf":       "report%2F..%2F..%2Fetc.pdf",
		"thyroid\ttsh-results.pdf":   "thyroid_tsh-results.pdf",
		"Report (1).pdf":             "report_%281%29.pdf",
		"CBC#2.pdf":                  "cbc%232.pdf",
		"100%.pdf":                   "100%25.pdf",
		"血液検査.pdf":                   "血液検査.pdf",
	}

	for in, want := range tests {
		if got := ReportID(in); got != want {
			t.Fatalf("ReportID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReportIDKeepsDistinctNamesApart(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"Report (1).pdf", "Report 1.pdf"},
		{"CBC#2.pdf", "CBC2.pdf"},
		{"血液検査.pdf", "尿検査.pdf"},
		{"Análisis.pdf", "Analisis.pdf"},
		{"a%23.pdf", "a#.pdf"},
		{"lab/1.pdf", "lab1.pdf"},
	}

	for _, p := range pairs {
		a, b := ReportID(p[0]), ReportID(p[1])
		if a == b {
			t.Fatalf("ReportID(%q) and ReportID(%q) both gave %q", p[0], p[1], a)
		}
	}
}

func TestReportIDFoldsCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	if a, b := ReportID("CBC  Report.pdf"), ReportID("cbc report.pdf"); a != b {
		t.Fatalf("expected %q and %q to match", a, b)
	}
}
