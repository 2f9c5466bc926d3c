/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/humaidq/medreport/logging"
)

var logger = logging.Logger(logging.SourceEngine)

// Document is a named, byte-addressable paginated document.
type Document struct {
	Name string
	Data []byte
}

// TextExtractor pulls raw text out of a document. An empty result means no
// text could be recovered.
type TextExtractor interface {
	ExtractText(data []byte) string
}

// RecordExtractor turns report text into raw test records using an external
// structured-extraction service.
type RecordExtractor interface {
	ExtractRecords(ctx context.Context, text, reportType string) ([]RawTestRecord, error)
}

// SummarySaver persists a summary on a best-effort basis.
type SummarySaver interface {
	Save(ctx context.Context, patientID, reportID string, summary AnalysisSummary)
}

// Request describes one analysis. ReportID is derived from the document
// name when empty.
type Request struct {
	Document   Document
	ReportType string
	PatientID  string
	ReportDate string
	ReportID   string
}

// Engine runs the extraction, classification and persistence pipeline.
type Engine struct {
	text    TextExtractor
	records RecordExtractor
	store   SummarySaver
	policy  Policy
}

// NewEngine creates an engine. store may be nil to skip persistence.
func NewEngine(text TextExtractor, records RecordExtractor, store SummarySaver) *Engine {
	return &Engine{
		text:    text,
		records: records,
		store:   store,
		policy:  DefaultPolicy,
	}
}

// WithPolicy returns a copy of the engine using the given thresholds.
func (e *Engine) WithPolicy(p Policy) *Engine {
	c := *e
	c.policy = p
	return &c
}

// Analyze runs the full pipeline for one document. It never fails: every
// problem is reported through an error summary.
func (e *Engine) Analyze(ctx context.Context, req Request) (summary AnalysisSummary) {
	reportID := req.ReportID
	if reportID == "" {
		reportID = ReportID(req.Document.Name)
	}

	log := logger.With("patient_id", req.PatientID, "report_id", reportID, "report_type", req.ReportType)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Analysis panicked", "panic", fmt.Sprint(r))
			summary = ErrorSummary(MsgAnalysisFailed)
		}
		observeSummary(summary)
	}()

	text := e.text.ExtractText(req.Document.Data)
	if text == "" {
		log.Warn("Text extraction failed", "error", ErrExtractionFailure, "document", req.Document.Name)
		return ErrorSummary(MsgExtractionFailed)
	}

	start := time.Now()
	records, err := e.records.ExtractRecords(ctx, text, req.ReportType)
	observeExtraction(start)

	if err != nil {
		log.Warn("Structured extraction failed", "error", fmt.Errorf("%w: %w", ErrServiceFailure, err))
		return ErrorSummary(MsgNoTestResults)
	}
	if len(records) == 0 {
		log.Warn("Structured extraction returned no records", "error", ErrServiceFailure)
		return ErrorSummary(MsgNoTestResults)
	}

	summary = Summarize(e.policy.Aggregate(records), req.ReportType)
	summary.PatientID = req.PatientID
	summary.ReportID = reportID
	summary.ReportDate = req.ReportDate

	log.Info("Report analyzed",
		"total", summary.TotalTests,
		"borderline", summary.BorderlineResults,
		"high_risk", summary.HighRiskResults,
		"duration_ms", time.Since(start).Milliseconds())

	if e.store != nil {
		e.store.Save(ctx, req.PatientID, reportID, summary)
	}

	return summary
}

// AnalyzeAll analyzes documents one at a time in the given order so that
// at most one extraction request is in flight.
func (e *Engine) AnalyzeAll(ctx context.Context, reqs []Request) []AnalysisSummary {
	out := make([]AnalysisSummary, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, e.Analyze(ctx, req))
	}

	return out
}
