// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(url string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:           url,
		MaxRetries:        1,
		RetryDelay:        1, // nanosecond; retries must not slow tests down
		RequestsPerMinute: 100000,
	})
}

func TestChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q, want /api/chat", r.URL.Path)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Stream {
			t.Error("client requested streaming")
		}
		if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Errorf("messages = %v", req.Messages)
		}
		json.NewEncoder(w).Encode(ChatResponse{
			Model:   req.Model,
			Message: Message{Role: "assistant", Content: "hi there"},
			Done:    true,
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	text, err := c.Generate(context.Background(), "llama3.1", "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "hi there" {
		t.Errorf("text = %q, want %q", text, "hi there")
	}
}

func TestChat_ModelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: `model "nope" not found`})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Generate(context.Background(), "nope", "hello")

	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeModelNotFound {
		t.Errorf("err = %v, want model-not-found ClientError", err)
	}
}

func TestChat_InvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Generate(context.Background(), "m", "hello")

	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeInvalidResponse {
		t.Errorf("err = %v, want invalid-response ClientError", err)
	}
}

func TestChat_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Closed before use: connection refused.

	c := newTestClient(srv.URL)
	_, err := c.Generate(context.Background(), "m", "hello")
	if err == nil {
		t.Fatal("expected error against a closed server")
	}

	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeNotRunning {
		t.Errorf("err = %v, want not-running ClientError", err)
	}
}

func TestIsRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TagsResponse{})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if !c.IsRunning(context.Background()) {
		t.Error("IsRunning = false against a live server")
	}

	down := newTestClient("http://127.0.0.1:1")
	if down.IsRunning(context.Background()) {
		t.Error("IsRunning = true against a dead address")
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TagsResponse{Models: []ModelInfo{{Name: "llama3.1"}, {Name: "qwen2.5"}}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 2 || models[0].Name != "llama3.1" {
		t.Errorf("models = %v", models)
	}
}

func TestDefaults(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{})
	if c.config.BaseURL == "" || c.config.Timeout == 0 || c.DefaultModel() == "" {
		t.Error("zero-value config fields not defaulted")
	}
}
