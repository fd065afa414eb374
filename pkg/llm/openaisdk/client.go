package openaisdk

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/artem13815/ragguard/pkg/llm"
)

// Client adapts the official OpenAI SDK to llm.ChatModel.
type Client struct {
	client openai.Client
	model  string
}

// New builds a client with SDK retries disabled: one failed attempt is terminal.
func New(apiKey, baseURL, model string, timeout time.Duration, extra ...option.RequestOption) (*Client, error) {
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
	return &Client{client: openai.NewClient(opts...), model: strings.TrimSpace(model)}, nil
}

func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case llm.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    msgs,
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(req.TopP),
	})
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", llm.ErrEmptyChoices
	}
	return resp.Choices[0].Message.Content, nil
}
