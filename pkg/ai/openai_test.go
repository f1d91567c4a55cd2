package ai

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/truthos/meeting-intel/pkg/config"
)

func newTestRequest() ChatRequest {
	return ChatRequest{
		Model: "gpt-4o-mini",
		Messages: []ChatMessage{
			{Role: "system", Content: "You are a meeting analysis assistant."},
			{Role: "user", Content: "Analyze this."},
		},
		Temperature: 0,
		MaxTokens:   1000,
	}
}

func TestCreateChatCompletion_Success(t *testing.T) {
	// Mock provider server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		// Temperature must always be present, even at zero
		if temp, ok := payload["temperature"]; !ok || temp != float64(0) {
			t.Fatalf("temperature not serialized, got %v", payload["temperature"])
		}
		if payload["max_tokens"] != float64(1000) {
			t.Fatalf("unexpected max_tokens %v", payload["max_tokens"])
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"sentiment":"neutral"}`}},
			},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	content, err := client.CreateChatCompletion(context.Background(), newTestRequest())
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if content != `{"sentiment":"neutral"}` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestCreateChatCompletion_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.CreateChatCompletion(context.Background(), newTestRequest())
	var statusErr *StatusError
	if !stdErrors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	if statusErr.Body == "" {
		t.Fatal("provider diagnostic body not retained")
	}
}

func TestCreateChatCompletion_EmptyReply(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"message":{"content":""}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

			_, err := client.CreateChatCompletion(context.Background(), newTestRequest())
			if !stdErrors.Is(err, ErrNoContent) {
				t.Fatalf("expected ErrNoContent, got %v", err)
			}
		})
	}
}

func TestCreateChatCompletion_Unreachable(t *testing.T) {
	// Point at a server that is already closed
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.CreateChatCompletion(context.Background(), newTestRequest()); err == nil {
		t.Fatal("expected transport error")
	}
}
