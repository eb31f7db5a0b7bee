// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeMissingKey
	ErrTypeAuth
	ErrTypeRateLimited
	ErrTypeContextExceeded
	ErrTypeTransport
	ErrTypeInvalidResponse
)

// ClientError represents an error from the completion client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match any ClientError against the sentinel of the
// same type.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	return ok && t.Type == e.Type
}

// Sentinel errors for easy checking.
var (
	ErrMissingKey      = &ClientError{Type: ErrTypeMissingKey, Message: "no API key available"}
	ErrAuthFailed      = &ClientError{Type: ErrTypeAuth, Message: "authentication failed"}
	ErrRateLimited     = &ClientError{Type: ErrTypeRateLimited, Message: "rate limited"}
	ErrContextExceeded = &ClientError{Type: ErrTypeContextExceeded, Message: "prompt exceeds model context window"}
)

// IsContextExceeded checks whether an error is a context overflow.
func IsContextExceeded(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeContextExceeded
	}
	return false
}

// IsAuthFailure checks whether an error is an authentication failure.
func IsAuthFailure(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeAuth || ce.Type == ErrTypeMissingKey
	}
	return false
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// EnvAPIKey is the environment variable consulted when no explicit key
// is supplied.
const EnvAPIKey = "OPENAI_API_KEY"

// ClientConfig holds configuration options for the completion client.
type ClientConfig struct {
	// BaseURL of the completion service (default: https://api.openai.com/v1).
	BaseURL string

	// APIKey authenticates requests. Empty falls back to $OPENAI_API_KEY.
	APIKey string

	// Model identifier for completion requests (default: "gpt-3.5-turbo").
	Model string

	// MaxResponseTokens is the requested response budget before
	// headroom clamping (default: 1024).
	MaxResponseTokens int

	// Timeout bounds the whole HTTP exchange. The original client had
	// no client-side timeout at all; a hung endpoint froze the editor
	// indefinitely (default: 60s).
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "https://api.openai.com/v1",
		Model:             "gpt-3.5-turbo",
		MaxResponseTokens: 1024,
		Timeout:           60 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client issues chat completion requests. Create one per session; it
// is stateless apart from its rate limiter.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client

	// limiter spaces out requests so rapid re-issued compiles cannot
	// hammer the endpoint: 1 request/sec sustained, burst of 2.
	limiter *rate.Limiter
}

// NewClient creates a completion client, filling zero config values
// with defaults.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://api.openai.com/v1"
	}
	if config.Model == "" {
		config.Model = "gpt-3.5-turbo"
	}
	if config.MaxResponseTokens == 0 {
		config.MaxResponseTokens = 1024
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.APIKey == "" {
		config.APIKey = os.Getenv(EnvAPIKey)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(1), 2),
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.config.Model
}

// SetModel switches the model used for subsequent requests.
func (c *Client) SetModel(model string) {
	c.config.Model = model
}

// SetAPIKey replaces the key used for subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.config.APIKey = key
}

// =============================================================================
// COMPLETION
// =============================================================================

// Complete sends one blocking chat completion request and returns the
// assistant's reply text, trimmed.
//
// The token budget is enforced before the network call: if the system
// instruction plus prompt already fill the model's context window the
// request is rejected with ErrContextExceeded, otherwise max_tokens is
// clamped to the remaining headroom minus a safety margin.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrMissingKey
	}

	inputTokens := EstimateTokens(systemPrompt) + EstimateTokens(userPrompt)
	if inputTokens >= ContextWindow(c.config.Model) {
		return "", ErrContextExceeded
	}
	budget := ResponseBudget(c.config.Model, inputTokens, c.config.MaxResponseTokens)
	if budget <= 0 {
		return "", ErrContextExceeded
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", &ClientError{Type: ErrTypeTransport, Message: "request cancelled", Cause: err}
	}

	reqBody := ChatRequest{
		Model: c.config.Model,
		Messages: []ChatMessage{
			NewSystemMessage(systemPrompt),
			NewUserMessage(userPrompt),
		},
		MaxTokens: budget,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &ClientError{Type: ErrTypeTransport, Message: "request timed out", Cause: err}
		}
		return "", &ClientError{Type: ErrTypeTransport, Message: "completion request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.errorFromStatus(resp)
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	if len(result.Choices) == 0 {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "response contained no choices"}
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// errorFromStatus converts a non-200 response into a typed error,
// preferring the service's own error message when it decodes.
func (c *Client) errorFromStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var env apiError
	msg := ""
	if err := json.Unmarshal(body, &env); err == nil {
		msg = env.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if msg != "" {
			return &ClientError{Type: ErrTypeAuth, Message: msg}
		}
		return ErrAuthFailed
	case http.StatusTooManyRequests:
		if msg != "" {
			return &ClientError{Type: ErrTypeRateLimited, Message: msg}
		}
		return ErrRateLimited
	default:
		if msg == "" {
			msg = "completion request failed: " + resp.Status
		}
		return &ClientError{Type: ErrTypeInvalidResponse, Message: msg}
	}
}
