/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "encoding/json"

// RiskLevel is the classifier verdict for a single test result.
type RiskLevel string

// Risk levels
const (
	RiskNormal     RiskLevel = "normal"
	RiskBorderline RiskLevel = "borderline"
	RiskHigh       RiskLevel = "high_risk"
	RiskUnknown    RiskLevel = "unknown"
)

// Direction tells which side of the reference range a result violated.
// Qualitative results use the observed state (e.g. "positive").
type Direction string

// Directions produced by the numeric and qualitative classifiers.
const (
	DirectionNormal        Direction = "normal"
	DirectionHigh          Direction = "high"
	DirectionLow           Direction = "low"
	DirectionUnknown       Direction = "unknown"
	DirectionPositive      Direction = "positive"
	DirectionIndeterminate Direction = "indeterminate"
	DirectionAbnormal      Direction = "abnormal"
)

// Summary statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RawTestRecord is one test parameter as returned by structured extraction.
// Values stay untyped strings until classification.
type RawTestRecord struct {
	TestName     string `json:"test_name"`
	ResultValue  string `json:"result_value"`
	ResultUnit   string `json:"result_unit"`
	RefRangeLow  string `json:"ref_range_low"`
	RefRangeHigh string `json:"ref_range_high"`
	RefRangeText string `json:"ref_range_text"`
}

// ClassifiedResult is a RawTestRecord with its risk verdict attached.
type ClassifiedResult struct {
	RawTestRecord
	RiskLevel RiskLevel `json:"risk_level"`
	Direction Direction `json:"direction"`
}

// RiskFactor is a non-normal result with the reference range collapsed into
// a single display string.
type RiskFactor struct {
	TestName       string    `json:"test_name"`
	ResultValue    string    `json:"result_value"`
	ResultUnit     string    `json:"result_unit"`
	ReferenceRange string    `json:"reference_range"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Direction      Direction `json:"direction"`
}

// AnalysisSummary is the engine output. Counts are only ever computed by
// Summarize and always match AllResults.
type AnalysisSummary struct {
	Status            string             `json:"status"`
	Message           string             `json:"message,omitempty"`
	ReportType        string             `json:"report_type,omitempty"`
	PatientID         string             `json:"patient_id,omitempty"`
	ReportID          string             `json:"report_id,omitempty"`
	ReportDate        string             `json:"report_date,omitempty"`
	TotalTests        int                `json:"total_tests"`
	NormalResults     int                `json:"normal_results"`
	BorderlineResults int                `json:"borderline_results"`
	HighRiskResults   int                `json:"high_risk_results"`
	UnknownResults    int                `json:"unknown_results"`
	RiskFactors       []RiskFactor       `json:"risk_factors"`
	AllResults        []ClassifiedResult `json:"all_results"`
}

// ErrorSummary builds a summary carrying a failure message and no results.
func ErrorSummary(message string) AnalysisSummary {
	return AnalysisSummary{
		Status:  StatusError,
		Message: message,
	}
}

// Succeeded reports whether the summary carries results.
func (s AnalysisSummary) Succeeded() bool {
	return s.Status == StatusSuccess
}

type errorSummaryJSON struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON writes error summaries as status and message only. Success
// summaries always carry both result lists, empty or not.
func (s AnalysisSummary) MarshalJSON() ([]byte, error) {
	if s.Status == StatusError {
		return json.Marshal(errorSummaryJSON{Status: s.Status, Message: s.Message})
	}

	type plain AnalysisSummary

	p := plain(s)
	if p.RiskFactors == nil {
		p.RiskFactors = []RiskFactor{}
	}
	if p.AllResults == nil {
		p.AllResults = []ClassifiedResult{}
	}

	return json.Marshal(p)
}
