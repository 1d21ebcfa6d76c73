package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"blinkbuy/config"
	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/domain/constants"
	"blinkbuy/internal/domain/repository"
	"blinkbuy/internal/domain/service"
	"blinkbuy/internal/errors"
	"blinkbuy/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenVerifier validates the bearer token of a push request
type TokenVerifier func(req *http.Request) error

// PushHandler consumes order-placed events pushed by Pub/Sub and hands the
// stored order over to fulfilment
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	orderRepo      repository.OrderRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	OrderRepo repository.OrderRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		orderRepo:      params.OrderRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages. A 503 asks Pub/Sub to
// redeliver; any other status acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := envelope.EventType(); eventType != "" && eventType != pubsub.EventTypeOrderPlaced {
		h.logger.Warn("[Worker] Ignoring unexpected event type",
			slog.String("event_type", eventType),
			slog.String("message_id", envelope.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	event, err := envelope.OrderPlaced()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("order_id", event.OrderID),
		slog.Int("line_count", len(event.Lines)),
	)

	if err := h.processOrder(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.OrderPlacedEvent) string {
	if requestID := envelope.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processOrder checks the event against the stored order. Storage failures
// are retried, a missing or mismatched order is acknowledged and dropped.
func (h *PushHandler) processOrder(ctx context.Context, event *service.OrderPlacedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if strings.TrimSpace(event.OrderID) == "" {
		return errors.New("order event without order id")
	}

	order, err := h.orderRepo.FindByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrapf(err, "order %s", event.OrderID)
		}

		return newRetryableError(errors.Wrapf(err, "load order %s", event.OrderID))
	}

	if order.GrandTotal != event.GrandTotal || order.TotalItems != event.TotalItems {
		return errors.Errorf("order %s does not match its event: total %d/%d items %d/%d",
			order.ID, order.GrandTotal, event.GrandTotal, order.TotalItems, event.TotalItems)
	}

	logger.Info("[Worker] Order queued for fulfilment",
		slog.String("order_id", order.ID),
		slog.String("delivery", order.DeliveryLabel),
		slog.String("payment_method", string(order.PaymentMethod)),
		slog.Int64("grand_total", order.GrandTotal),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
