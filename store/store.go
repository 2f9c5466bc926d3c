/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package store persists analysis summaries in a key-value string store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/logging"
)

var logger = logging.Logger(logging.SourceStore)

// KV is a key-value string store. Get returns ErrNotFound for missing keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Key returns the storage key for a patient's report.
func Key(patientID, reportID string) string {
	return fmt.Sprintf("report_analysis_%s_%s", patientID, reportID)
}

// AnalysisStore saves and loads summaries. Writes are last-write-wins per
// key and failures never reach the caller.
type AnalysisStore struct {
	kv KV
}

// New wraps a key-value backend.
func New(kv KV) *AnalysisStore {
	return &AnalysisStore{kv: kv}
}

// Save writes summary under the patient/report key, replacing any previous
// value. Errors are logged and dropped.
func (s *AnalysisStore) Save(ctx context.Context, patientID, reportID string, summary analysis.AnalysisSummary) {
	key := Key(patientID, reportID)

	data, err := json.Marshal(summary)
	if err != nil {
		logger.Error("Failed to encode analysis", "key", key, "error", err)
		return
	}

	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		logger.Error("Failed to save analysis", "key", key, "error", err)
		return
	}

	logger.Info("Analysis saved", "key", key)
}

// Load returns the stored summary. Missing or unreadable entries are
// reported as a miss.
func (s *AnalysisStore) Load(ctx context.Context, patientID, reportID string) (analysis.AnalysisSummary, bool) {
	key := Key(patientID, reportID)

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Error("Failed to load analysis", "key", key, "error", err)
		}
		return analysis.AnalysisSummary{}, false
	}

	var summary analysis.AnalysisSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		logger.Warn("Discarding malformed analysis", "key", key, "error", err)
		return analysis.AnalysisSummary{}, false
	}

	return summary, true
}
