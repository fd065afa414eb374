package chatcompletions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/ragguard/pkg/llm"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "qwen/qwen2.5-32b-instruct"
	completionPath = "/chat/completions"
)

// Client is a minimal OpenAI-compatible chat completions client.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	httpDo  *http.Client
}

// New builds a client. baseURL may be either an API root (".../v1") or the
// full ".../chat/completions" endpoint.
func New(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		APIKey:  strings.TrimSpace(apiKey),
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Model:   model,
		httpDo: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithHTTPClient swaps the underlying HTTP client. Tests use it to point at httptest servers.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpDo = hc
	}
	return c
}

type chatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

func (c *Client) endpoint() string {
	if strings.HasSuffix(c.BaseURL, completionPath) {
		return c.BaseURL
	}
	return c.BaseURL + completionPath
}

// Complete posts the request and returns choices[0].message.content.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if c.APIKey == "" {
		return "", llm.ErrNoAPIKey
	}
	model := req.Model
	if model == "" {
		model = c.Model
	}
	if model == "" {
		model = defaultModel
	}
	data, err := json.Marshal(chatCompletionsRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("chat completions http %d: %v", resp.StatusCode, errMap)
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat completions response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", llm.ErrEmptyChoices
	}
	return out.Choices[0].Message.Content, nil
}
