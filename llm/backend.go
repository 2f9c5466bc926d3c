/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewCompleter builds the completer named by backend from environment
// configuration.
func NewCompleter(ctx context.Context, backend string) (Completer, error) {
	switch strings.ToLower(backend) {
	case "", "ollama":
		config, err := GetOllamaConfig()
		if err != nil {
			return nil, err
		}
		return NewOllama(*config), nil

	case "gemini":
		config, err := GetGeminiConfig()
		if err != nil {
			return nil, err
		}
		return NewGemini(ctx, *config)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
}
