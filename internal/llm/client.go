package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	// ErrNotConfigured is returned by every call when no API credentials were provided.
	ErrNotConfigured = errors.New("llm: completion api is not configured")
	// ErrEmptyResponse means the endpoint answered without a usable first choice.
	ErrEmptyResponse = errors.New("llm: empty completion response")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single chat completion call. Zero Model, MaxTokens or
// Temperature fall back to the client defaults.
type Request struct {
	Messages    []Message
	Model       string
	MaxTokens   int
	Temperature float32
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Client interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// NotConfigured short-circuits every request with ErrNotConfigured.
type NotConfigured struct{}

func (NotConfigured) Generate(context.Context, Request) (Response, error) {
	return Response{}, ErrNotConfigured
}
