// Package service defines interfaces for external collaborators.
package service

import (
	"context"

	"blinkbuy/internal/domain/entity"
)

// ChatRequest is what the assistant sends per round: the full model-facing
// history plus a rendered summary of the live cart.
type ChatRequest struct {
	Messages    []entity.HistoryEntry `json:"messages"`
	CartContext string                `json:"cartContext"`
}

// ChatCompletion is the first choice of a chat-completions response.
type ChatCompletion struct {
	Content      string                `json:"content"`
	ToolCalls    []entity.ToolCallSpec `json:"tool_calls,omitempty"`
	FinishReason string                `json:"finish_reason,omitempty"`
}

// HasToolCalls reports whether the model asked for tool execution.
func (c *ChatCompletion) HasToolCalls() bool {
	return c != nil && len(c.ToolCalls) > 0
}

// ChatTransport performs one request/response exchange with the hosted model.
// The transport injects the system prompt and the tool catalog.
type ChatTransport interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatCompletion, error)

	// Forward proxies a raw chat request and returns the provider's JSON body.
	Forward(ctx context.Context, req ChatRequest) ([]byte, error)
}
