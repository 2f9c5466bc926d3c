/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Numeric classification policy. One-sided bounds use a flat multiplicative
// margin, two-sided bounds use the relative deviation from the violated bound.
const (
	OneSidedHighMargin = 1.2
	OneSidedLowMargin  = 0.8
	DeviationThreshold = 0.2
)

// Policy holds the tunable numeric thresholds.
type Policy struct {
	HighMargin   float64
	LowMargin    float64
	MaxDeviation float64
}

// DefaultPolicy is the policy used by Classify.
var DefaultPolicy = Policy{
	HighMargin:   OneSidedHighMargin,
	LowMargin:    OneSidedLowMargin,
	MaxDeviation: DeviationThreshold,
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// parseNumber reads the leading decimal number of s, ignoring any trailing
// unit or annotation ("9.0 g/dL" parses as 9).
func parseNumber(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// parseBound returns nil for bounds that are missing, "N/A", unparseable or
// zero. A zero bound cannot serve as a deviation denominator and is treated
// as not reported.
func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") {
		return nil
	}

	v, ok := parseNumber(s)
	if !ok || v == 0 {
		return nil
	}

	return &v
}

// ClassifyNumeric classifies a numeric value against optional bounds.
func (p Policy) ClassifyNumeric(value float64, low, high *float64) (RiskLevel, Direction) {
	switch {
	case low == nil && high == nil:
		return RiskUnknown, DirectionUnknown

	case low == nil:
		if value > *high*p.HighMargin {
			return RiskHigh, DirectionHigh
		} else if value > *high {
			return RiskBorderline, DirectionHigh
		}
		return RiskNormal, DirectionNormal

	case high == nil:
		if value < *low*p.LowMargin {
			return RiskHigh, DirectionLow
		} else if value < *low {
			return RiskBorderline, DirectionLow
		}
		return RiskNormal, DirectionNormal
	}

	if value < *low {
		if (*low-value)/(*low) > p.MaxDeviation {
			return RiskHigh, DirectionLow
		}
		return RiskBorderline, DirectionLow
	}

	if value > *high {
		if (value-*high)/(*high) > p.MaxDeviation {
			return RiskHigh, DirectionHigh
		}
		return RiskBorderline, DirectionHigh
	}

	return RiskNormal, DirectionNormal
}

// ClassifyNumeric classifies with DefaultPolicy.
func ClassifyNumeric(value float64, low, high *float64) (RiskLevel, Direction) {
	return DefaultPolicy.ClassifyNumeric(value, low, high)
}

// ClassifyQualitative matches a text result against a descriptive reference.
func ClassifyQualitative(value, refText string) (RiskLevel, Direction) {
	if value == "" || refText == "" {
		return RiskUnknown, DirectionUnknown
	}

	result := strings.ToLower(strings.TrimSpace(value))
	ref := strings.ToLower(strings.TrimSpace(refText))

	if strings.Contains(ref, "negative") {
		switch {
		case strings.Contains(result, "positive"):
			return RiskHigh, DirectionPositive
		case strings.Contains(result, "negative"):
			return RiskNormal, DirectionNormal
		case strings.Contains(result, "borderline"), strings.Contains(result, "indeterminate"):
			return RiskBorderline, DirectionIndeterminate
		}
	}

	// "abnormal" contains "normal", so the normal rule takes it first.
	if strings.Contains(ref, "normal") {
		switch {
		case strings.Contains(result, "normal"):
			return RiskNormal, DirectionNormal
		case strings.Contains(result, "abnormal"):
			return RiskHigh, DirectionAbnormal
		}
	}

	return RiskUnknown, DirectionUnknown
}

// outcome is the internal tagged result of classifying one record.
type outcome interface {
	verdict() (RiskLevel, Direction)
}

type numericOutcome struct {
	level     RiskLevel
	direction Direction
}

type qualitativeOutcome struct {
	level     RiskLevel
	direction Direction
}

type unknownOutcome struct{}

func (o numericOutcome) verdict() (RiskLevel, Direction)     { return o.level, o.direction }
func (o qualitativeOutcome) verdict() (RiskLevel, Direction) { return o.level, o.direction }
func (unknownOutcome) verdict() (RiskLevel, Direction)       { return RiskUnknown, DirectionUnknown }

// classify routes a record to the numeric path only when its value parses
// and at least one numeric bound is present.
func (p Policy) classify(rec RawTestRecord) outcome {
	low := parseBound(rec.RefRangeLow)
	high := parseBound(rec.RefRangeHigh)

	if value, ok := parseNumber(rec.ResultValue); ok && (low != nil || high != nil) {
		level, dir := p.ClassifyNumeric(value, low, high)
		return numericOutcome{level: level, direction: dir}
	}

	level, dir := ClassifyQualitative(rec.ResultValue, rec.RefRangeText)
	if level == RiskUnknown {
		return unknownOutcome{}
	}

	return qualitativeOutcome{level: level, direction: dir}
}

// Classify attaches a risk level and direction to rec.
func (p Policy) Classify(rec RawTestRecord) ClassifiedResult {
	level, dir := p.classify(rec).verdict()

	return ClassifiedResult{
		RawTestRecord: rec,
		RiskLevel:     level,
		Direction:     dir,
	}
}

// Classify classifies rec with DefaultPolicy.
func Classify(rec RawTestRecord) ClassifiedResult {
	return DefaultPolicy.Classify(rec)
}
