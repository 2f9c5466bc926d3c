/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/humaidq/medreport/analysis"
)

// DefaultExportFilename is used when the caller gives no filename.
const DefaultExportFilename = "report-analysis.json"

// ExportContentType is the media type of exported summaries.
const ExportContentType = "application/json"

// Sink receives exported documents, e.g. a download response or a folder.
type Sink interface {
	Deliver(filename, contentType string, data []byte) error
}

// EncodeExport renders a summary as indented JSON.
func EncodeExport(summary analysis.AnalysisSummary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	return append(data, '\n'), nil
}

// ExportFilename returns filename, or the default when empty.
func ExportFilename(filename string) string {
	if filename == "" {
		return DefaultExportFilename
	}

	return filename
}

// Export serializes summary and hands it to sink.
func Export(summary analysis.AnalysisSummary, filename string, sink Sink) error {
	data, err := EncodeExport(summary)
	if err != nil {
		return err
	}

	filename = ExportFilename(filename)
	if err := sink.Deliver(filename, ExportContentType, data); err != nil {
		return fmt.Errorf("failed to deliver %s: %w", filename, err)
	}

	logger.Info("Analysis exported", "filename", filename, "bytes", len(data))

	return nil
}

// DirSink writes exports into a directory.
type DirSink struct {
	Dir string
}

func (d DirSink) Deliver(filename, _ string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(d.Dir, filepath.Base(filename))

	return os.WriteFile(path, data, 0o644)
}
