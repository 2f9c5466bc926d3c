/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/logging"
	"github.com/humaidq/medreport/store"
)

var webLogger = logging.Logger(logging.SourceWeb)

// MaxUploadSize bounds the accepted report size.
const MaxUploadSize = 32 << 20

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(c flamego.Context, status int, v any) {
	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		webLogger.Warn("Failed to write response", "error", err)
	}
}

func writeError(c flamego.Context, status int, err error) {
	writeJSON(c, status, errorResponse{Status: analysis.StatusError, Message: err.Error()})
}

// AnalyzeReport accepts a multipart upload and returns its summary. Failed
// analyses are still answered with 200 and an error summary, matching the
// engine contract; only malformed requests get 4xx.
func AnalyzeReport(c flamego.Context, analyzer Analyzer) {
	r := c.Request().Request
	r.Body = http.MaxBytesReader(c.ResponseWriter(), r.Body, MaxUploadSize)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, errUploadTooLarge)
			return
		}
		writeError(c, http.StatusBadRequest, fmt.Errorf("invalid form: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, errMissingFile)
		return
	}
	defer file.Close()

	patientID := strings.TrimSpace(r.FormValue("patient_id"))
	if patientID == "" {
		writeError(c, http.StatusBadRequest, errMissingPatientID)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(c, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	reportType := strings.TrimSpace(r.FormValue("report_type"))
	if reportType == "" {
		reportType = "custom"
	}

	summary := analyzer.Analyze(r.Context(), analysis.Request{
		Document:   analysis.Document{Name: header.Filename, Data: data},
		ReportType: reportType,
		PatientID:  patientID,
		ReportDate: strings.TrimSpace(r.FormValue("report_date")),
		ReportID:   strings.TrimSpace(r.FormValue("report_id")),
	})

	writeJSON(c, http.StatusOK, summary)
}

// GetAnalysis returns a stored summary.
func GetAnalysis(c flamego.Context, loader SummaryLoader) {
	summary, ok := loader.Load(c.Request().Context(), c.Param("patient"), c.Param("report"))
	if !ok {
		writeError(c, http.StatusNotFound, errAnalysisNotFound)
		return
	}

	writeJSON(c, http.StatusOK, summary)
}

// responseSink delivers an export as a download.
type responseSink struct {
	w http.ResponseWriter
}

func (s responseSink) Deliver(filename, contentType string, data []byte) error {
	h := s.w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	s.w.WriteHeader(http.StatusOK)

	_, err := s.w.Write(data)

	return err
}

// ExportAnalysis downloads a stored summary as a JSON document.
func ExportAnalysis(c flamego.Context, loader SummaryLoader) {
	summary, ok := loader.Load(c.Request().Context(), c.Param("patient"), c.Param("report"))
	if !ok {
		writeError(c, http.StatusNotFound, errAnalysisNotFound)
		return
	}

	filename := sanitizeFilename(c.Query("filename"))
	if err := store.Export(summary, filename, responseSink{w: c.ResponseWriter()}); err != nil {
		webLogger.Error("Export failed", "error", err)
	}
}

// sanitizeFilename keeps a download name to a single safe path element.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.LastIndexAny(name, `/\`); idx != -1 {
		name = name[idx+1:]
	}

	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == '"' || r == 0x7f {
			return -1
		}
		return r
	}, name)
}
