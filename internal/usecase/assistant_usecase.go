package usecase

import (
	"context"

	"blinkbuy/internal/domain/entity"
)

// AssistantUsecase is the chat session of the AI shopping assistant
type AssistantUsecase interface {
	// SendMessage records the user's text, runs one orchestration turn and returns the reply
	SendMessage(ctx context.Context, text string) (*entity.ChatMessage, error)

	// AddSuggestedToCart adds the given catalog products and appends a confirmation
	AddSuggestedToCart(ctx context.Context, productIDs []string) (*entity.ChatMessage, error)

	// ClearChat resets the transcript to the welcome message and empties the model history
	ClearChat()

	// Messages returns a copy of the transcript
	Messages() []entity.ChatMessage

	// IsTyping reports whether a turn is in flight
	IsTyping() bool

	// History returns a copy of the model-facing history
	History() []entity.HistoryEntry
}
