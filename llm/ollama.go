/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// OllamaConfig holds the Ollama server configuration
type OllamaConfig struct {
	URL   string
	Model string
}

// OpenAI-compatible request/response structures
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GetOllamaConfig loads Ollama configuration from environment variables
func GetOllamaConfig() (*OllamaConfig, error) {
	url := os.Getenv("OLLAMA_URL")
	model := os.Getenv("OLLAMA_MODEL")

	if url == "" || model == "" {
		return nil, ErrOllamaConfig
	}

	return &OllamaConfig{
		URL:   url,
		Model: model,
	}, nil
}

// Ollama talks to an OpenAI-compatible chat completions endpoint.
type Ollama struct {
	config OllamaConfig
	client *http.Client
}

// NewOllama creates a completer for the given server.
func NewOllama(config OllamaConfig) *Ollama {
	return &Ollama{
		config: config,
		client: &http.Client{
			Timeout: 300 * time.Second,
		},
	}
}

// Complete sends the instruction as the system message and the report text
// as the user message, and returns the first choice.
func (o *Ollama) Complete(ctx context.Context, instruction, text string) (string, error) {
	reqBody := chatRequest{
		Model: o.config.Model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: instruction,
			},
			{
				Role:    "user",
				Content: text,
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := strings.TrimSuffix(o.config.URL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("Ollama error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", ErrNoCompletionChoice
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}
