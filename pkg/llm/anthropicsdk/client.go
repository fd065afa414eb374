package anthropicsdk

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/artem13815/ragguard/pkg/llm"
)

const defaultMaxTokens = 512

// Client adapts the Anthropic Messages API to llm.ChatModel. System messages
// are sent through the dedicated system field.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func New(apiKey, baseURL, model string, maxTokens int, timeout time.Duration, extra ...option.RequestOption) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, llm.ErrNoAPIKey
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSpace(baseURL)))
	}
	opts = append(opts, extra...)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     strings.TrimSpace(model),
		maxTokens: int64(maxTokens),
	}, nil
}

func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	var msgs []anthropic.MessageParam
	for _, m := range req.Messages {
		if m.Role == llm.RoleSystem {
			continue
		}
		msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
	}
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   c.maxTokens,
		Messages:    msgs,
		Temperature: anthropic.Float(req.Temperature),
		TopP:        anthropic.Float(req.TopP),
	}
	if system := req.SystemPrompt(); system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	var parts []string
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			parts = append(parts, text.Text)
		}
	}
	if len(parts) == 0 {
		return "", llm.ErrEmptyChoices
	}
	return strings.Join(parts, ""), nil
}
