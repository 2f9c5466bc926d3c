/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/humaidq/medreport/analysis"
)

// Analyzer runs the report analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) analysis.AnalysisSummary
}

// SummaryLoader reads previously stored summaries.
type SummaryLoader interface {
	Load(ctx context.Context, patientID, reportID string) (analysis.AnalysisSummary, bool)
}

// New builds the HTTP API.
func New(analyzer Analyzer, loader SummaryLoader) *flamego.Flame {
	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(RequestLogger)
	f.Use(NoCacheHeaders())

	f.MapTo(analyzer, (*Analyzer)(nil))
	f.MapTo(loader, (*SummaryLoader)(nil))

	f.Get("/healthz", Healthz)
	f.Get("/metrics", promhttp.Handler().ServeHTTP)

	f.Post("/api/analyses", AnalyzeReport)
	f.Get("/api/analyses/{patient}/{report}", GetAnalysis)
	f.Get("/api/analyses/{patient}/{report}/export", ExportAnalysis)

	return f
}

// Healthz reports liveness.
func Healthz(c flamego.Context) {
	writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
