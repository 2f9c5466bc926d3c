/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingFile      = errors.New("missing file")
	errMissingPatientID = errors.New("missing patient_id")
	errUploadTooLarge   = errors.New("upload too large")
	errAnalysisNotFound = errors.New("analysis not found")
)
