// Copyright 2026 Deco Project. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package llm provides completion-service clients used to turn raw lint
// findings into a human-readable explanation.
package llm

import (
	"context"
	"fmt"
)

// Provider identifies a completion service backend.
type Provider string

const (
	// ProviderOpenAI uses the OpenAI chat completions API.
	ProviderOpenAI Provider = "openai"
	// ProviderGemini uses the Google Gemini API.
	ProviderGemini Provider = "gemini"
)

// Client is the abstraction over completion service providers.
// Implementations issue a single synchronous request and return the
// generated text trimmed of surrounding whitespace.
type Client interface {
	// Summarize sends the prompt to the completion service and returns
	// the generated text.
	Summarize(ctx context.Context, prompt string) (string, error)

	// Model returns the fixed model identifier used by the client.
	Model() string

	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a completion client for the given provider.
func NewClient(ctx context.Context, provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderOpenAI, "":
		return NewOpenAIClient(apiKey), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unknown completion provider: %s (valid: openai, gemini)", provider)
	}
}
