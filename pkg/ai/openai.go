package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/truthos/meeting-intel/pkg/config"
)

// ErrNoContent is returned when the provider responds successfully but
// the completion carries no message content.
var ErrNoContent = errors.New("no content in provider response")

// StatusError is returned when the provider answers with a non-success
// HTTP status. The body is kept for logs, never shown to callers.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

// OpenAIClient is a minimal client for OpenAI-compatible chat completions
type OpenAIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAIClient creates a client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("OPENAI_API_URL")
		if base == "" {
			base = "https://api.openai.com"
		}
	}

	timeout := 30 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is present
func (c *OpenAIClient) Configured() bool {
	return c.apiKey != ""
}

// ChatMessage is one entry in the conversation sent to the model
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests.
// Temperature is always serialized so a zero value reaches the provider.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CreateChatCompletion sends the request and returns the first choice's
// message content. Failure modes are distinguishable by the caller:
// transport errors come back as-is, non-2xx statuses as *StatusError,
// and a missing completion as ErrNoContent.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("failed to decode provider response: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", ErrNoContent
	}
	return cr.Choices[0].Message.Content, nil
}
