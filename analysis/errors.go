/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "errors"

// Messages carried by error summaries.
const (
	MsgExtractionFailed = "Could not extract text from the uploaded file."
	MsgNoTestResults    = "Could not extract test results from the report."
	MsgAnalysisFailed   = "An error occurred while analyzing the report."
)

var (
	// ErrExtractionFailure marks a document with no recoverable text.
	ErrExtractionFailure = errors.New("no text recoverable from document")
	// ErrServiceFailure marks a failed or unparseable extraction round trip.
	ErrServiceFailure = errors.New("no test results extracted")
)
