/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	analysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medreport",
		Name:      "analyses_total",
		Help:      "Report analyses by outcome status.",
	}, []string{"status"})

	resultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medreport",
		Name:      "classified_results_total",
		Help:      "Classified test results by risk level.",
	}, []string{"risk_level"})

	extractionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "medreport",
		Name:      "structured_extraction_duration_seconds",
		Help:      "Duration of the structured extraction round trip.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})
)

func init() {
	prometheus.MustRegister(analysesTotal, resultsTotal, extractionDuration)
}

func observeSummary(s AnalysisSummary) {
	analysesTotal.WithLabelValues(s.Status).Inc()

	for _, r := range s.AllResults {
		resultsTotal.WithLabelValues(string(r.RiskLevel)).Inc()
	}
}

func observeExtraction(start time.Time) {
	extractionDuration.Observe(time.Since(start).Seconds())
}
