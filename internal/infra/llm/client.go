// Package llm is the chat-completions transport of the shopping assistant.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"blinkbuy/config"
	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/domain/entity"
	domainerrors "blinkbuy/internal/domain/errors"
	"blinkbuy/internal/domain/repository"
	"blinkbuy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBaseURL   = "https://api.groq.com/openai/v1"
	defaultModel     = "openai/gpt-oss-120b"
	maxErrorBodySize = 2048
)

type chatCompletionRequest struct {
	Model       string                `json:"model"`
	Messages    []entity.HistoryEntry `json:"messages"`
	Tools       []toolDefinition      `json:"tools"`
	ToolChoice  string                `json:"tool_choice"`
	Temperature float64               `json:"temperature"`
	MaxTokens   int                   `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   *string               `json:"content"`
			ToolCalls []entity.ToolCallSpec `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// Params holds dependencies for the chat transport, injected by Fx
type Params struct {
	fx.In

	Config      *config.Config
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewChatTransport creates an OpenAI-compatible chat-completions client.
// A missing API key is reported per request, not at startup.
func NewChatTransport(params Params) service.ChatTransport {
	cfg := params.Config.Assistant
	if cfg == nil {
		cfg = &config.AssistantConfig{}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	if cfg.APIKey == "" {
		params.Logger.Warn("Assistant API key is not configured, chat requests will fail")
	}

	return &client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (c *client) categoryNames() []string {
	categories := c.catalogRepo.Categories()
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}

	return names
}

// buildRequest puts the system prompt ahead of the conversation history
func (c *client) buildRequest(req service.ChatRequest) chatCompletionRequest {
	messages := make([]entity.HistoryEntry, 0, len(req.Messages)+1)
	messages = append(messages, entity.TextEntry(entity.HistoryRoleSystem, buildSystemPrompt(req.CartContext, c.categoryNames())))
	messages = append(messages, req.Messages...)

	return chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Tools:       toolCatalog(),
		ToolChoice:  "auto",
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
}

// Forward sends one request and returns the provider's response body unchanged
func (c *client) Forward(ctx context.Context, req service.ChatRequest) ([]byte, error) {
	if c.apiKey == "" {
		return nil, domainerrors.ErrAssistantNotConfigured
	}

	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return nil, errors.Wrap(err, "encode chat request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrTransportFailed, "send chat request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrTransportFailed, "read chat response: %v", err)
	}

	logger.Debug("Chat completion finished",
		slog.Int("status", resp.StatusCode),
		slog.Int("history_len", len(req.Messages)),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := respBody
		if len(snippet) > maxErrorBodySize {
			snippet = snippet[:maxErrorBodySize]
		}
		logger.Error("Chat provider returned an error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)

		return nil, errors.Wrapf(domainerrors.ErrTransportFailed, "provider status %d", resp.StatusCode)
	}

	return respBody, nil
}

// Complete decodes the first choice of the provider response
func (c *client) Complete(ctx context.Context, req service.ChatRequest) (*service.ChatCompletion, error) {
	body, err := c.Forward(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrTransportFailed, "decode chat response: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Wrap(domainerrors.ErrTransportFailed, "no choices in chat response")
	}

	choice := resp.Choices[0]
	completion := &service.ChatCompletion{
		ToolCalls:    choice.Message.ToolCalls,
		FinishReason: choice.FinishReason,
	}
	if choice.Message.Content != nil {
		completion.Content = *choice.Message.Content
	}

	return completion, nil
}

// Module provides the chat transport FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChatTransport),
)
