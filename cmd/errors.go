/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errNoInputFiles          = errors.New("at least one report file is required")
	errPatientRequired       = errors.New("patient is required")
	errReportRequired        = errors.New("report is required")
	errSingleFileOnly        = errors.New("--report-id and --export accept a single report file")
	errAnalysisFailed        = errors.New("one or more reports could not be analyzed")
	errAnalysisNotFound      = errors.New("analysis not found")
	errDurableStoreRequired  = errors.New("show needs a persistent store (--store postgres or --store redis)")
	errInvalidPolicy         = errors.New("invalid classification thresholds")
)
