// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer returns an httptest server that replies to chat
// completion requests with the given content, and a pointer to the
// last decoded request body.
func newTestServer(t *testing.T, content string) (*httptest.Server, *ChatRequest) {
	t.Helper()
	lastReq := &ChatRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(lastReq))

		resp := ChatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Index   int         `json:"index"`
			Message ChatMessage `json:"message"`
			Finish  string      `json:"finish_reason"`
		}{Message: ChatMessage{Role: "assistant", Content: content}})
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, lastReq
}

func testClient(srvURL string) *Client {
	return NewClient(&ClientConfig{
		BaseURL: srvURL,
		APIKey:  "test-key",
		Model:   "gpt-3.5-turbo",
	})
}

func TestCompleteReturnsTrimmedReply(t *testing.T) {
	srv, lastReq := newTestServer(t, "  Status: ok\nDesc: d\nNext: None\nCode: pass\n ")
	c := testClient(srv.URL)

	reply, err := c.Complete(context.Background(), "system instruction", "name: demo")
	require.NoError(t, err)
	assert.Equal(t, "Status: ok\nDesc: d\nNext: None\nCode: pass", reply)

	// Request carried system + user messages in order with a budget.
	require.Len(t, lastReq.Messages, 2)
	assert.Equal(t, "system", lastReq.Messages[0].Role)
	assert.Equal(t, "system instruction", lastReq.Messages[0].Content)
	assert.Equal(t, "user", lastReq.Messages[1].Role)
	assert.Equal(t, "name: demo", lastReq.Messages[1].Content)
	assert.Equal(t, "gpt-3.5-turbo", lastReq.Model)
	assert.Equal(t, 1024, lastReq.MaxTokens)
}

func TestCompleteMissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	c := NewClient(&ClientConfig{BaseURL: "http://127.0.0.1:0"})

	_, err := c.Complete(context.Background(), "sys", "prompt")
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.True(t, IsAuthFailure(err))
}

func TestCompleteRejectsOversizedPromptBeforeNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(&ClientConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "unknown-model", // 4096-token window
	})

	// ~8k estimated tokens of input against a 4096 window.
	huge := strings.Repeat("key: value\n", 6000)
	_, err := c.Complete(context.Background(), "sys", huge)
	assert.True(t, IsContextExceeded(err))
	assert.False(t, called, "oversized prompt must be rejected before any network call")
}

func TestCompleteClampsBudgetToHeadroom(t *testing.T) {
	srv, lastReq := newTestServer(t, "ok")
	c := NewClient(&ClientConfig{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		Model:             "unknown-model", // 4096-token window
		MaxResponseTokens: 100000,
	})

	_, err := c.Complete(context.Background(), "sys", "prompt")
	require.NoError(t, err)
	assert.Less(t, lastReq.MaxTokens, 4096)
	assert.Greater(t, lastReq.MaxTokens, 0)
}

func TestCompleteAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Complete(context.Background(), "sys", "prompt")
	require.Error(t, err)
	assert.True(t, IsAuthFailure(err))
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestCompleteRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Complete(context.Background(), "sys", "prompt")
	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrTypeRateLimited, ce.Type)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Complete(context.Background(), "sys", "prompt")
	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrTypeInvalidResponse, ce.Type)
}

func TestNewClientDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	c := NewClient(nil)

	assert.Equal(t, "https://api.openai.com/v1", c.config.BaseURL)
	assert.Equal(t, "gpt-3.5-turbo", c.Model())
	assert.Equal(t, "env-key", c.config.APIKey)
	assert.NotZero(t, c.config.Timeout)
}
