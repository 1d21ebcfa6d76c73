package handler

import (
	"log/slog"
	"net/http"

	"blinkbuy/internal/delivery/http/response"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/domain/service"
	"blinkbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	Transport   service.ChatTransport
	Logger      *slog.Logger
}

// AssistantHandler serves the chat session and the model proxy
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
	transport   service.ChatTransport
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: params.AssistantUC,
		transport:   params.Transport,
		logger:      params.Logger,
	}
}

// SendMessageRequest represents the request body for a chat message
type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// AddSuggestionsRequest represents the request body for adding suggested products
type AddSuggestionsRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,required"`
}

// ChatProxyRequest is the body of the model proxy
type ChatProxyRequest struct {
	Messages    []entity.HistoryEntry `json:"messages" validate:"required,min=1"`
	CartContext string                `json:"cartContext"`
}

// Transcript is the chat state rendered by the client
type Transcript struct {
	Messages []entity.ChatMessage `json:"messages"`
	IsTyping bool                 `json:"isTyping"`
}

// GetMessages returns the transcript and the typing flag
func (h *AssistantHandler) GetMessages(c echo.Context) error {
	return response.Success(c, http.StatusOK, Transcript{
		Messages: h.assistantUC.Messages(),
		IsTyping: h.assistantUC.IsTyping(),
	}, "Messages retrieved successfully")
}

// SendMessage runs one assistant turn and returns the reply
func (h *AssistantHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	reply, err := h.assistantUC.SendMessage(c.Request().Context(), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply, "Reply generated")
}

// AddSuggestions adds suggested products to the cart
func (h *AssistantHandler) AddSuggestions(c echo.Context) error {
	var req AddSuggestionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	confirmation, err := h.assistantUC.AddSuggestedToCart(c.Request().Context(), req.ProductIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmation, "Suggested products added")
}

// ClearChat resets the conversation
func (h *AssistantHandler) ClearChat(c echo.Context) error {
	h.assistantUC.ClearChat()

	return response.Success(c, http.StatusOK, Transcript{
		Messages: h.assistantUC.Messages(),
		IsTyping: h.assistantUC.IsTyping(),
	}, "Chat cleared")
}

// ChatProxy forwards a conversation to the model and returns its JSON unchanged
func (h *AssistantHandler) ChatProxy(c echo.Context) error {
	var req ChatProxyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	raw, err := h.transport.Forward(c.Request().Context(), service.ChatRequest{
		Messages:    req.Messages,
		CartContext: req.CartContext,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSONBlob(http.StatusOK, raw)
}
