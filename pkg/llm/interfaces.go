// Package llm provides the text-generation capability boundary. Responses
// are normalized here into plain success(text)/failure(error) values so
// pipeline stages never inspect provider response shapes.
package llm

import (
	"context"
)

// Client is one configured text-generation agent. The three pipeline
// agents (validator, generator, summarizer) are independent Client
// instances that differ only in model, temperature and the system message
// handed to Generate - never in invocation contract.
// Use this interface for dependency injection to enable mocking in tests.
type Client interface {
	// Generate submits one prompt and returns the response text.
	Generate(ctx context.Context, systemMessage string, prompt string) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Ensure implementations satisfy Client at compile time.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*AnthropicClient)(nil)
	_ Client = (*MockClient)(nil)
)
