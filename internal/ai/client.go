// Package ai talks to the OpenAI chat completion API and turns its replies
// into untrusted content proposals for the game.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/logger"
	"github.com/RobNel12/newbot-ai/internal/metrics"
)

// Completer is the subset of *openai.Client the package uses
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client sends chat completions with an enforced timeout
type Client struct {
	api     Completer
	model   string
	timeout time.Duration
}

// NewClient creates a client for the OpenAI API. An empty key yields a client
// whose every call fails with domain.ErrGeneratorUnavailable.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	var api Completer
	if apiKey != "" {
		api = openai.NewClient(apiKey)
	}
	return NewClientWithCompleter(api, model, timeout)
}

// NewClientWithCompleter creates a client over an arbitrary Completer
func NewClientWithCompleter(api Completer, model string, timeout time.Duration) *Client {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{api: api, model: model, timeout: timeout}
}

// Enabled reports whether the client can reach an API
func (c *Client) Enabled() bool {
	return c != nil && c.api != nil
}

// CompleteJSON requests a single JSON object and returns its raw text
func (c *Client) CompleteJSON(ctx context.Context, kind, system, user string) (string, error) {
	if !c.Enabled() {
		return "", domain.ErrGeneratorUnavailable
	}
	return c.complete(ctx, kind, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   JSONMaxTokens,
		Temperature: DefaultTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user + "\n\n" + JSONFormatHint},
		},
	})
}

// Chat returns a free-form reply to prompt
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", domain.ErrGeneratorUnavailable
	}
	return c.complete(ctx, KindChat, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: ChatMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: ChatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
}

func (c *Client) complete(ctx context.Context, kind string, req openai.ChatCompletionRequest) (string, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	metrics.GeneratorDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = metrics.OutcomeTimeout
		}
		metrics.GeneratorRequests.WithLabelValues(kind, outcome).Inc()
		log.Warn("Completion request failed", "kind", kind, "model", req.Model, "error", err)
		return "", NewAPIError(ProviderOpenAI, statusCode(err), "completion failed", err)
	}

	if len(resp.Choices) == 0 {
		metrics.GeneratorRequests.WithLabelValues(kind, metrics.OutcomeError).Inc()
		return "", NewAPIError(ProviderOpenAI, 0, "no choices returned", nil)
	}

	metrics.GeneratorRequests.WithLabelValues(kind, metrics.OutcomeSuccess).Inc()
	log.Debug("Completion received",
		"kind", kind,
		"response_length", len(resp.Choices[0].Message.Content),
		"finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// ensure the real client satisfies Completer
var _ Completer = (*openai.Client)(nil)

// errMalformed wraps a decoding failure as a generator failure
func errMalformed(kind string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrMalformedGeneration, kind, err)
}
