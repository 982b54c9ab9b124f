// Package llm is the boundary to the hosted text-generation API.
package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Generator turns one prompt into one completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// QueryError wraps any failure of a single remote call.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

// OpenAI calls an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI builds a generator for the given endpoint, credential and model.
// SDK retries are disabled: a failed question is re-asked by the user.
func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Generate sends prompt as a single user message and returns the trimmed reply.
func (g *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
