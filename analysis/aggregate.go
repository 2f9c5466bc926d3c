/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

// Aggregate classifies every record, preserving input order.
func Aggregate(records []RawTestRecord) []ClassifiedResult {
	return DefaultPolicy.Aggregate(records)
}

// Aggregate classifies every record with p, preserving input order.
func (p Policy) Aggregate(records []RawTestRecord) []ClassifiedResult {
	if len(records) == 0 {
		return nil
	}

	out := make([]ClassifiedResult, 0, len(records))
	for _, rec := range records {
		out = append(out, p.Classify(rec))
	}

	return out
}

// ReferenceRange collapses the bounds of a result into one display string.
func ReferenceRange(r RawTestRecord) string {
	if r.RefRangeLow != "" && r.RefRangeHigh != "" {
		return r.RefRangeLow + "-" + r.RefRangeHigh
	}

	return r.RefRangeText
}

// IsRiskFactor reports whether a level is surfaced as a risk factor.
func IsRiskFactor(level RiskLevel) bool {
	return level == RiskBorderline || level == RiskHigh
}

// Summarize builds a success summary from classified results.
func Summarize(classified []ClassifiedResult, reportType string) AnalysisSummary {
	summary := AnalysisSummary{
		Status:      StatusSuccess,
		ReportType:  reportType,
		TotalTests:  len(classified),
		RiskFactors: []RiskFactor{},
		AllResults:  append([]ClassifiedResult{}, classified...),
	}

	for _, r := range classified {
		switch r.RiskLevel {
		case RiskNormal:
			summary.NormalResults++
		case RiskBorderline:
			summary.BorderlineResults++
		case RiskHigh:
			summary.HighRiskResults++
		case RiskUnknown:
			summary.UnknownResults++
		}

		if IsRiskFactor(r.RiskLevel) {
			summary.RiskFactors = append(summary.RiskFactors, RiskFactor{
				TestName:       r.TestName,
				ResultValue:    r.ResultValue,
				ResultUnit:     r.ResultUnit,
				ReferenceRange: ReferenceRange(r.RawTestRecord),
				RiskLevel:      r.RiskLevel,
				Direction:      r.Direction,
			})
		}
	}

	return summary
}

// CountsConsistent reports whether the per-level counts add up to the total
// and the total matches the result list.
func (s AnalysisSummary) CountsConsistent() bool {
	sum := s.NormalResults + s.BorderlineResults + s.HighRiskResults + s.UnknownResults
	return sum == s.TotalTests && s.TotalTests == len(s.AllResults)
}
