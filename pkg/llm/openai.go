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

	"github.com/deco-project/ci-tools/pkg/errors"
)

// DefaultOpenAIModel is the fixed model used for lint summaries.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient implements Client for the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// chatRequest is the chat completions request payload.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatMessage is a single conversation message.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the chat completions response payload.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAIClient creates a new OpenAI completion client.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	baseURL := os.Getenv("OPENAI_API_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   DefaultOpenAIModel,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// SetBaseURL sets a custom base URL, e.g. for an API-compatible proxy.
func (c *OpenAIClient) SetBaseURL(url string) {
	c.baseURL = url
}

// Summarize issues a single chat completion request with the prompt as
// the system message and returns the generated text.
func (c *OpenAIClient) Summarize(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.LLMError("OpenAI API key is required", nil)
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.LLMError("completion request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("completion request returned status %d", resp.StatusCode)
		if parsed.Error != nil {
			msg = fmt.Sprintf("%s: %s", msg, parsed.Error.Message)
		}
		return "", errors.LLMError(msg, nil)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.LLMError("no choices in completion response", nil)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// Model returns the fixed model identifier.
func (c *OpenAIClient) Model() string {
	return c.model
}

// Close is a no-op for the HTTP client.
func (c *OpenAIClient) Close() error {
	return nil
}
