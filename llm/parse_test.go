// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"errors"
	"testing"

	"github.com/humaidq/medreport/analysis"
)

func TestFindJSONArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{`[{"a":1}]`, `[{"a":1}]`, true},
		{"Here you go:\n```json\n[{\"a\":1}, {\"b\":[2]}]\n```\nDone.", `[{"a":1}, {"b":[2]}]`, true},
		{"no array here", "", false},
		{"] backwards [", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := FindJSONArray(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("FindJSONArray(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseRecordsWithProse(t *testing.T) {
	t.Parallel()

	response := `Sure! Here are the results:
[
  {"test_name": "Hemoglobin", "result_value": 9.0, "result_unit": "g/dL", "ref_range_low": 12.0, "ref_range_high": 15.0, "ref_range_text": ""},
  {"test_name": "HIV 1/2", "result_value": "Non-Reactive", "result_unit": null, "ref_range_low": null, "ref_range_high": null, "ref_range_text": "Non-Reactive"}
]
Let me know if you need anything else.`

	records, err := ParseRecords(response)
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}

	want := []analysis.RawTestRecord{
		{TestName: "Hemoglobin", ResultValue: "9", ResultUnit: "g/dL", RefRangeLow: "12", RefRangeHigh: "15"},
		{TestName: "HIV 1/2", ResultValue: "Non-Reactive", RefRangeText: "Non-Reactive"},
	}

	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d: expected %+v, got %+v", i, want[i], records[i])
		}
	}
}

func TestParseRecordsFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
		wantErr  error
	}{
		{"no brackets", "I could not find any test results in this document.", ErrNoJSONArray},
		{"invalid json", `[{"test_name": "Hb", }]`, ErrInvalidJSON},
		{"unrelated brackets", "See note [1] and reference [2].", ErrInvalidJSON},
		{"array of strings", `["Hemoglobin", "9.0"]`, ErrInvalidJSON},
	}

	for _, tt := range tests {
		records, err := ParseRecords(tt.response)
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
		}
		if len(records) != 0 {
			t.Fatalf("%s: expected no records, got %d", tt.name, len(records))
		}
	}
}

func TestParseRecordsEmptyArray(t *testing.T) {
	t.Parallel()

	records, err := ParseRecords("[]")
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestParseRecordsNormalisesNumbers(t *testing.T) {
	t.Parallel()

	response := `[
  {"test_name": "Bilirubin", "result_value": 0.80, "result_unit": "mg/dL", "ref_range_low": 0, "ref_range_high": 5, "ref_range_text": "0 - 5 mg/dL"},
  {"test_name": "WBC", "result_value": 1.2e4, "result_unit": "/uL", "ref_range_low": 4000.0, "ref_range_high": false, "ref_range_text": ""}
]`

	records, err := ParseRecords(response)
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}

	want := []analysis.RawTestRecord{
		{TestName: "Bilirubin", ResultValue: "0.8", ResultUnit: "mg/dL", RefRangeHigh: "5", RefRangeText: "0 - 5 mg/dL"},
		{TestName: "WBC", ResultValue: "12000", ResultUnit: "/uL", RefRangeLow: "4000"},
	}

	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d: expected %+v, got %+v", i, want[i], records[i])
		}
	}

	if got := analysis.ReferenceRange(records[0]); got != "0 - 5 mg/dL" {
		t.Fatalf("expected text reference range for a zero bound, got %q", got)
	}
}
