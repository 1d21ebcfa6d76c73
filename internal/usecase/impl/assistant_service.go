package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"blinkbuy/config"
	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/domain/entity"
	domainerrors "blinkbuy/internal/domain/errors"
	"blinkbuy/internal/domain/service"
	"blinkbuy/internal/errors"
	"blinkbuy/internal/usecase"

	"github.com/google/uuid"
)

const (
	welcomeMessageID = "welcome"
	welcomeMessage   = "Hi! I'm your BlinkBuy AI assistant 🛒\n\n" +
		"I can help you:\n" +
		"• Add or remove products from your cart\n" +
		"• Suggest ingredients for recipes\n" +
		"• Find products you need\n\n" +
		"Try saying \"I want to make pasta\" or \"Add milk and eggs\"!"

	fallbackReply      = "I processed your request."
	transportFailReply = "Sorry, I encountered an error. Please try again."
	notConfiguredReply = "Sorry, I can't reach the AI service right now. Make sure the assistant API key is configured."
	roundCapReply      = "Sorry, that request needed too many steps. Please try again with a simpler request."
)

// errToolRoundsExceeded ends a turn whose model kept requesting tools
var errToolRoundsExceeded = errors.New("tool round limit exceeded")

// assistantService owns the chat session: the visible transcript, the
// model-facing history and the typing flag. One turn runs at a time.
type assistantService struct {
	cart          usecase.CartUsecase
	search        usecase.SearchUsecase
	catalog       usecase.CatalogUsecase
	transport     service.ChatTransport
	maxToolRounds int
	logger        *slog.Logger

	mu         sync.Mutex
	messages   []entity.ChatMessage
	history    []entity.HistoryEntry
	typing     bool
	generation uint64
	cancelTurn context.CancelFunc
}

// NewAssistantService creates a new assistant session starting at the welcome message
func NewAssistantService(
	cart usecase.CartUsecase,
	search usecase.SearchUsecase,
	catalog usecase.CatalogUsecase,
	transport service.ChatTransport,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AssistantUsecase {
	maxRounds := 0
	if cfg != nil && cfg.Assistant != nil {
		maxRounds = cfg.Assistant.MaxToolRounds
	}
	if maxRounds < 1 {
		maxRounds = 5
	}

	return &assistantService{
		cart:          cart,
		search:        search,
		catalog:       catalog,
		transport:     transport,
		maxToolRounds: maxRounds,
		logger:        logger,
		messages:      []entity.ChatMessage{newWelcomeMessage()},
	}
}

func newWelcomeMessage() entity.ChatMessage {
	return entity.ChatMessage{
		ID:        welcomeMessageID,
		Role:      entity.ChatRoleAssistant,
		Content:   welcomeMessage,
		CreatedAt: time.Now(),
	}
}

func newAssistantMessage(content string) entity.ChatMessage {
	return entity.ChatMessage{
		ID:        uuid.NewString(),
		Role:      entity.ChatRoleAssistant,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage runs one orchestration turn. The user's message is visible in
// the transcript before the model is called. A reply that completes after
// ClearChat is returned but not recorded.
func (srv *assistantService) SendMessage(ctx context.Context, text string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrEmptyMessage
	}

	srv.mu.Lock()
	if srv.typing {
		srv.mu.Unlock()

		return nil, domainerrors.ErrAssistantBusy
	}
	srv.messages = append(srv.messages, entity.ChatMessage{
		ID:        uuid.NewString(),
		Role:      entity.ChatRoleUser,
		Content:   text,
		CreatedAt: time.Now(),
	})
	srv.typing = true
	generation := srv.generation
	history := slices.Clone(srv.history)
	turnCtx, cancel := context.WithCancel(ctx)
	srv.cancelTurn = cancel
	srv.mu.Unlock()

	defer cancel()

	reply, updated := srv.runTurn(turnCtx, history, text)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if generation != srv.generation {
		srv.log(ctx).Info("Discarding reply of a cleared chat", slog.String("message_id", reply.ID))

		return &reply, nil
	}
	srv.history = updated
	srv.messages = append(srv.messages, reply)
	srv.typing = false
	srv.cancelTurn = nil

	return &reply, nil
}

// turnState accumulates the products surfaced across the rounds of one turn
type turnState struct {
	suggested          []entity.Product
	added              []entity.Product
	removed            []entity.Product
	isRecipeSuggestion bool
}

func (t *turnState) merge(outcome toolOutcome) {
	t.suggested = append(t.suggested, outcome.suggested...)
	t.added = append(t.added, outcome.added...)
	t.removed = append(t.removed, outcome.removed...)
	t.isRecipeSuggestion = t.isRecipeSuggestion || outcome.isRecipeSuggestion
}

// runTurn works on its own copy of the history. On failure it returns the
// history it was given, which rolls back every entry this turn appended.
func (srv *assistantService) runTurn(
	ctx context.Context,
	history []entity.HistoryEntry,
	text string,
) (entity.ChatMessage, []entity.HistoryEntry) {
	work := append(slices.Clone(history), entity.TextEntry(entity.HistoryRoleUser, text))

	completion, err := srv.complete(ctx, work)
	if err != nil {
		return srv.failureReply(ctx, err), history
	}

	var state turnState
	finalContent := completion.Content

	for round := 1; completion.HasToolCalls(); round++ {
		if round > srv.maxToolRounds {
			return srv.failureReply(ctx, errToolRoundsExceeded), history
		}

		entry := entity.HistoryEntry{
			Role:      entity.HistoryRoleAssistant,
			ToolCalls: completion.ToolCalls,
		}
		if content := completion.Content; content != "" {
			entry.Content = &content
		}
		work = append(work, entry)

		for _, spec := range completion.ToolCalls {
			outcome := srv.dispatch(ctx, spec)
			state.merge(outcome)

			result := entity.TextEntry(entity.HistoryRoleTool, outcome.result)
			result.ToolCallID = spec.ID
			work = append(work, result)
		}

		completion, err = srv.complete(ctx, work)
		if err != nil {
			return srv.failureReply(ctx, err), history
		}
		if completion.Content != "" {
			finalContent = completion.Content
		}
	}

	work = append(work, entity.TextEntry(entity.HistoryRoleAssistant, finalContent))

	reply := newAssistantMessage(finalContent)
	if reply.Content == "" {
		reply.Content = fallbackReply
	}
	reply.SuggestedProducts = dedupeByID(state.suggested)
	reply.AddedProducts = nilIfEmpty(state.added)
	reply.RemovedProducts = nilIfEmpty(state.removed)
	reply.IsRecipeSuggestion = state.isRecipeSuggestion

	return reply, work
}

func (srv *assistantService) complete(ctx context.Context, history []entity.HistoryEntry) (*service.ChatCompletion, error) {
	completion, err := srv.transport.Complete(ctx, service.ChatRequest{
		Messages:    history,
		CartContext: FormatCartContents(srv.cart.Items()),
	})
	if err != nil {
		return nil, err
	}
	if completion == nil {
		return nil, errors.Wrap(domainerrors.ErrTransportFailed, "empty completion")
	}

	return completion, nil
}

// dispatch decodes and executes one tool call. Bad arguments become a tool
// result the model can react to.
func (srv *assistantService) dispatch(ctx context.Context, spec entity.ToolCallSpec) toolOutcome {
	call, err := DecodeToolCall(spec)
	if err != nil {
		srv.log(ctx).Warn("Invalid tool arguments",
			slog.String("tool", spec.Function.Name),
			slog.Any("error", err),
		)

		return toolOutcome{result: fmt.Sprintf("Invalid arguments for %s.", spec.Function.Name)}
	}

	srv.log(ctx).Debug("Executing tool", slog.String("tool", call.ToolName()))

	return srv.executeTool(ctx, call)
}

func (srv *assistantService) failureReply(ctx context.Context, err error) entity.ChatMessage {
	switch {
	case errors.Is(err, domainerrors.ErrAssistantNotConfigured):
		srv.log(ctx).Warn("Assistant is not configured", slog.Any("error", err))

		return newAssistantMessage(notConfiguredReply)
	case errors.Is(err, errToolRoundsExceeded):
		srv.log(ctx).Warn("Assistant turn hit the tool round limit", slog.Int("max_tool_rounds", srv.maxToolRounds))

		return newAssistantMessage(roundCapReply)
	default:
		srv.log(ctx).Error("Assistant turn failed", slog.Any("error", err))

		return newAssistantMessage(transportFailReply)
	}
}

func dedupeByID(products []entity.Product) []entity.Product {
	if len(products) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(products))
	unique := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.ID]; ok {
			continue
		}
		seen[product.ID] = struct{}{}
		unique = append(unique, product)
	}

	return unique
}

func nilIfEmpty(products []entity.Product) []entity.Product {
	if len(products) == 0 {
		return nil
	}

	return products
}

// AddSuggestedToCart adds each known product once and records a confirmation
func (srv *assistantService) AddSuggestedToCart(ctx context.Context, productIDs []string) (*entity.ChatMessage, error) {
	products := make([]entity.Product, 0, len(productIDs))
	for _, id := range productIDs {
		product, err := srv.catalog.ProductByID(id)
		if err != nil {
			srv.log(ctx).Debug("Skipping unknown suggested product", slog.String("product_id", id))

			continue
		}
		products = append(products, product)
	}
	if len(products) == 0 {
		return nil, domainerrors.ErrProductNotFound.WithDetails(strings.Join(productIDs, ","))
	}

	if err := srv.cart.AddProducts(ctx, products); err != nil {
		return nil, err
	}

	noun := "item"
	if len(products) > 1 {
		noun = "items"
	}
	confirmation := newAssistantMessage(fmt.Sprintf("Added %d %s to your cart! 🎉", len(products), noun))
	confirmation.AddedProducts = products

	srv.mu.Lock()
	srv.messages = append(srv.messages, confirmation)
	srv.mu.Unlock()

	return &confirmation, nil
}

// ClearChat resets the transcript and history and aborts any in-flight turn
func (srv *assistantService) ClearChat() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.generation++
	if srv.cancelTurn != nil {
		srv.cancelTurn()
		srv.cancelTurn = nil
	}
	srv.messages = []entity.ChatMessage{newWelcomeMessage()}
	srv.history = nil
	srv.typing = false
}

func (srv *assistantService) Messages() []entity.ChatMessage {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.messages)
}

func (srv *assistantService) IsTyping() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.typing
}

func (srv *assistantService) History() []entity.HistoryEntry {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.history)
}
