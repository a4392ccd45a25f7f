package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/complyradar/complyradar/internal/domain/ai"
)

const defaultModel = "gpt-4o-mini"

// approximate characters per completion token, used to size MaxTokens from
// the caller's character budget.
const charsPerToken = 4

// Client implements the Generator port on the OpenAI chat completion API.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
}

func NewClient(apiKey, model string, maxTokens int) *Client {
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &Client{api: openai.NewClient(apiKey), model: model, maxTokens: maxTokens}
}

// Generate runs one chat completion. Provider failures are mapped onto the
// domain failure taxonomy so callers can treat them uniformly.
func (c *Client) Generate(ctx context.Context, prompt string, maxOutputChars int) (string, error) {
	maxTokens := c.maxTokens
	if maxOutputChars > 0 && maxOutputChars/charsPerToken < maxTokens {
		maxTokens = maxOutputChars / charsPerToken
	}
	if maxTokens < 64 {
		maxTokens = 64
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a legal compliance analyst. Follow the output format in the user message exactly."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	// Reasoning models take MaxCompletionTokens instead of MaxTokens.
	if strings.HasPrefix(c.model, "o1") || strings.HasPrefix(c.model, "o3") || strings.HasPrefix(c.model, "o4") || strings.HasPrefix(c.model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", domai.ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domai.ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domai.ErrTimeout, err)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return fmt.Errorf("%w: %v", domai.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", domai.ErrUnavailable, err)
}
