/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package pdftext

import "errors"

var (
	ErrEmptyDocument     = errors.New("document is empty")
	ErrMalformedDocument = errors.New("malformed PDF")
	ErrMissingPage       = errors.New("page object missing")
	ErrNoText            = errors.New("no text recoverable from document")
)
