// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"encoding/json"
	"testing"
)

func TestSummaryJSONAlwaysCarriesResultLists(t *testing.T) {
	t.Parallel()

	records := []RawTestRecord{
		{TestName: "Glucose", ResultValue: "85", RefRangeLow: "70", RefRangeHigh: "100"},
	}

	tests := []struct {
		name    string
		summary AnalysisSummary
	}{
		{name: "all normal", summary: Summarize(Aggregate(records), "glucose")},
		{name: "no results", summary: Summarize(nil, "glucose")},
		{name: "hand built", summary: AnalysisSummary{Status: StatusSuccess}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.summary)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			var fields map[string]json.RawMessage
			if err := json.Unmarshal(data, &fields); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			for _, key := range []string{"risk_factors", "all_results"} {
				raw, ok := fields[key]
				if !ok {
					t.Fatalf("expected %q in %s", key, data)
				}
				if string(raw) == "null" {
					t.Fatalf("expected %q to be an array, got null", key)
				}
			}

			if string(fields["risk_factors"]) != "[]" {
				t.Fatalf("expected empty risk_factors, got %s", fields["risk_factors"])
			}
		})
	}
}

func TestErrorSummaryJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ErrorSummary(MsgExtractionFailed))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"status":"error","message":"` + MsgExtractionFailed + `"}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}

	var back AnalysisSummary
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.Succeeded() || back.Message != MsgExtractionFailed {
		t.Fatalf("unexpected round trip %+v", back)
	}
}
