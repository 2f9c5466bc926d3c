/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package llm turns report text into raw test records through a language
// model backend.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/logging"
)

var logger = logging.Logger(logging.SourceLLM)

// Completer sends an instruction and the report text to a model and returns
// its free-text answer.
type Completer interface {
	Complete(ctx context.Context, instruction, text string) (string, error)
}

// Extractor implements analysis.RecordExtractor on top of a Completer.
// It performs exactly one round trip per call and never retries.
type Extractor struct {
	completer Completer
}

// NewExtractor creates an extractor backed by c.
func NewExtractor(c Completer) *Extractor {
	return &Extractor{completer: c}
}

// ExtractRecords asks the backend for the test parameters found in text.
func (e *Extractor) ExtractRecords(ctx context.Context, text, reportType string) ([]analysis.RawTestRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	response, err := e.completer.Complete(ctx, BuildInstruction(reportType), text)
	if err != nil {
		logger.Error("Extraction request failed", "report_type", reportType, "error", err)
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}

	records, err := ParseRecords(response)
	if err != nil {
		logger.Error("Could not parse extraction response", "report_type", reportType, "error", err, "response_len", len(response))
		logger.Debug("Unparseable extraction response", "response", response)
		return nil, err
	}

	logger.Debug("Extracted test records", "report_type", reportType, "count", len(records))

	return records, nil
}
