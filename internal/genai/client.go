// Package genai wraps the OpenAI-compatible chat-completions API for the
// generation pass-through tools.
package genai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when a tool call does not name a model.
const DefaultModel = "gpt-4o-mini"

var ErrMissingKey = errors.New("api key is required")

// Client holds per-process generation settings. API keys arrive per tool
// call, so the underlying SDK client is constructed per request; it carries
// no connection state and is cheap to build.
type Client struct {
	baseURL      string
	defaultModel string
}

// NewClient creates a generation client. baseURL may be empty to use the
// platform default; defaultModel falls back to DefaultModel.
func NewClient(baseURL, defaultModel string) *Client {
	if defaultModel == "" {
		defaultModel = DefaultModel
	}
	return &Client{
		baseURL:      baseURL,
		defaultModel: defaultModel,
	}
}

// Model returns the model that will serve a request asking for model, which
// may be empty.
func (c *Client) Model(model string) string {
	if model == "" {
		return c.defaultModel
	}
	return model
}

// Complete performs a single chat round trip and returns the generated text.
// Calls are never retried: a failure is reported to the caller as-is.
func (c *Client) Complete(ctx context.Context, key, model, prompt string) (string, error) {
	if key == "" {
		return "", ErrMissingKey
	}

	// WithMaxRetries(0) disables the SDK's built-in retry: a failed call is
	// reported once, immediately.
	opts := []option.RequestOption{option.WithAPIKey(key), option.WithMaxRetries(0)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.Model(model)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("generation service returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Chat forwards a raw message and returns the generated text unmodified.
func (c *Client) Chat(ctx context.Context, key, model, message string) (string, error) {
	return c.Complete(ctx, key, model, message)
}

// TestConnection performs a minimal round trip to verify the key and
// transport work. The message defaults to a short connectivity probe.
func (c *Client) TestConnection(ctx context.Context, key, message string) (string, error) {
	if message == "" {
		message = "Hello! Reply with a short confirmation that the connection works."
	}
	return c.Complete(ctx, key, "", message)
}

// AnalyzeCode runs a templated analysis prompt over the given code.
func (c *Client) AnalyzeCode(ctx context.Context, key, code, language string, kind AnalysisKind) (string, error) {
	return c.Complete(ctx, key, "", AnalysisPrompt(code, language, kind))
}

// GenerateCode runs a templated generation prompt for the given requirements.
func (c *Client) GenerateCode(ctx context.Context, key, requirements, language, style string) (string, error) {
	return c.Complete(ctx, key, "", GenerationPrompt(requirements, language, style))
}

// Remediation maps an outbound failure to a human-readable hint appended to
// formatted error text.
func Remediation(err error) string {
	if errors.Is(err, ErrMissingKey) {
		return "Provide an API key in the tool arguments."
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return "Check that the API key is valid and has access to the requested model."
		case 404:
			return "Check the model name and the service base URL."
		case 429:
			return "The service is rate limiting requests. Wait a moment and try again."
		default:
			if apiErr.StatusCode >= 500 {
				return "The generation service reported an internal error. Try again later."
			}
		}
	}
	return "Check network connectivity and the service base URL."
}
