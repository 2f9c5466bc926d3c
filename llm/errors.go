/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package llm

import "errors"

var (
	ErrNoJSONArray        = errors.New("response contains no JSON array")
	ErrInvalidJSON        = errors.New("response array is not valid JSON")
	ErrEmptyResponse      = errors.New("empty response from extraction service")
	ErrEmptyText          = errors.New("no report text to extract from")
	ErrOllamaConfig       = errors.New("Ollama configuration incomplete: OLLAMA_URL and OLLAMA_MODEL must be set")
	ErrGeminiAPIKey       = errors.New("GEMINI_API_KEY is not set")
	ErrUnknownBackend     = errors.New("unknown extraction backend")
	ErrNoCompletionChoice = errors.New("no completion choices returned")
)
