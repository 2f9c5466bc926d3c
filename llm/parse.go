/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/humaidq/medreport/analysis"
)

// FindJSONArray returns the span from the first "[" to the last "]" of a
// free-text response.
//
// TODO: switch to schema-constrained output once both backends support a
// JSON response schema; prose with unrelated brackets misparses here.
func FindJSONArray(response string) (string, bool) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start < 0 || end < start {
		return "", false
	}

	return response[start : end+1], true
}

// flexString accepts strings, numbers, booleans and null from the service
// and keeps them as text. Numbers use their shortest decimal form; zero,
// false and null become "".
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch x := v.(type) {
	case string:
		*f = flexString(x)
	case json.Number:
		*f = flexString(formatNumber(x))
	case bool:
		if x {
			*f = "true"
		} else {
			*f = ""
		}
	default:
		*f = ""
	}

	return nil
}

func formatNumber(n json.Number) string {
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return n.String()
	}
	if v == 0 {
		return ""
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

type wireRecord struct {
	TestName     flexString `json:"test_name"`
	ResultValue  flexString `json:"result_value"`
	ResultUnit   flexString `json:"result_unit"`
	RefRangeLow  flexString `json:"ref_range_low"`
	RefRangeHigh flexString `json:"ref_range_high"`
	RefRangeText flexString `json:"ref_range_text"`
}

// ParseRecords extracts the bracketed JSON array from a response and
// decodes it into raw test records.
func ParseRecords(response string) ([]analysis.RawTestRecord, error) {
	span, ok := FindJSONArray(strings.TrimSpace(response))
	if !ok {
		return nil, ErrNoJSONArray
	}

	var wire []wireRecord
	if err := json.Unmarshal([]byte(span), &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	records := make([]analysis.RawTestRecord, 0, len(wire))
	for _, w := range wire {
		records = append(records, analysis.RawTestRecord{
			TestName:     strings.TrimSpace(string(w.TestName)),
			ResultValue:  strings.TrimSpace(string(w.ResultValue)),
			ResultUnit:   strings.TrimSpace(string(w.ResultUnit)),
			RefRangeLow:  strings.TrimSpace(string(w.RefRangeLow)),
			RefRangeHigh: strings.TrimSpace(string(w.RefRangeHigh)),
			RefRangeText: strings.TrimSpace(string(w.RefRangeText)),
		})
	}

	return records, nil
}
