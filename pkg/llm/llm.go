package llm

import (
	"context"
	"errors"
	"strings"
)

// Message roles understood by every provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

var (
	ErrNoAPIKey     = errors.New("llm api key is empty")
	ErrEmptyChoices = errors.New("no choices returned by model")
)

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries everything a stage decides per call. Model may be
// left empty; transports then use their configured default.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
	TopP        float64
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
// Complete returns the text of the first choice.
type ChatModel interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// NewRequest builds a system+user request. Both contents are trimmed.
func NewRequest(model, systemPrompt, userPrompt string, temperature, topP float64) CompletionRequest {
	return CompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: RoleSystem, Content: strings.TrimSpace(systemPrompt)},
			{Role: RoleUser, Content: strings.TrimSpace(userPrompt)},
		},
		Temperature: temperature,
		TopP:        topP,
	}
}

// SystemPrompt returns the joined content of all system messages.
func (r CompletionRequest) SystemPrompt() string {
	var parts []string
	for _, m := range r.Messages {
		if m.Role == RoleSystem && m.Content != "" {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
