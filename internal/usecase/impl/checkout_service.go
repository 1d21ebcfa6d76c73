package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/domain/entity"
	domainerrors "blinkbuy/internal/domain/errors"
	"blinkbuy/internal/domain/repository"
	"blinkbuy/internal/domain/service"
	"blinkbuy/internal/errors"
	"blinkbuy/internal/usecase"
)

const (
	label10Min         = "Deliver in 10 minutes"
	label30Min         = "Deliver in 30 minutes"
	labelScheduled     = "Scheduled delivery"
	orderIDPrefix      = "BB"
	orderNumberMin     = 100000
	orderNumberSpan    = 900000
	scheduledDateInput = "2006-01-02"
	scheduledTimeInput = "15:04"
)

type checkoutService struct {
	cart      usecase.CartUsecase
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	cart usecase.CartUsecase,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	qrCodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:      cart,
		orderRepo: orderRepo,
		publisher: publisher,
		qrCodeSvc: qrCodeSvc,
		logger:    logger,
	}
}

func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Quote returns the cart with pricing and the selectable delivery slots
func (s *checkoutService) Quote() *usecase.CheckoutQuote {
	return &usecase.CheckoutQuote{
		CartSnapshot: s.cart.Snapshot(),
		Slots: []usecase.DeliverySlotOption{
			{ID: entity.DeliverySlot10Min, Label: label10Min},
			{ID: entity.DeliverySlot30Min, Label: label30Min},
			{ID: entity.DeliverySlotScheduled, Label: labelScheduled},
		},
	}
}

// deliveryLabel validates the slot and renders its label
func deliveryLabel(input *usecase.PlaceOrderInput) (string, error) {
	switch input.Slot {
	case entity.DeliverySlot10Min:
		return label10Min, nil
	case entity.DeliverySlot30Min:
		return label30Min, nil
	case entity.DeliverySlotScheduled:
		date := strings.TrimSpace(input.ScheduledDate)
		clock := strings.TrimSpace(input.ScheduledTime)
		if date == "" || clock == "" {
			return "", domainerrors.ErrInvalidDeliverySlot.WithDetails("scheduled delivery needs a date and a time")
		}
		if _, err := time.Parse(scheduledDateInput, date); err != nil {
			return "", domainerrors.ErrInvalidDeliverySlot.WithDetails("date must be YYYY-MM-DD")
		}
		if _, err := time.Parse(scheduledTimeInput, clock); err != nil {
			return "", domainerrors.ErrInvalidDeliverySlot.WithDetails("time must be HH:MM")
		}

		return fmt.Sprintf("Scheduled: %s at %s", date, clock), nil
	default:
		return "", domainerrors.ErrInvalidDeliverySlot.WithDetails(string(input.Slot))
	}
}

func validPaymentMethod(method entity.PaymentMethod) bool {
	switch method {
	case entity.PaymentMethodUPI, entity.PaymentMethodCard, entity.PaymentMethodCOD:
		return true
	default:
		return false
	}
}

func newOrderID() string {
	return fmt.Sprintf("%s%d", orderIDPrefix, orderNumberMin+rand.IntN(orderNumberSpan))
}

// PlaceOrder snapshots the cart into an order, announces it and takes the ordered items out of the cart
func (s *checkoutService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	label, err := deliveryLabel(input)
	if err != nil {
		return nil, err
	}
	if !validPaymentMethod(input.PaymentMethod) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method " + string(input.PaymentMethod))
	}

	snapshot := s.cart.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	order := &entity.Order{
		ID:            newOrderID(),
		Items:         snapshot.Items,
		TotalItems:    snapshot.TotalItems,
		Subtotal:      snapshot.Pricing.Subtotal,
		DeliveryFee:   snapshot.Pricing.DeliveryFee,
		HandlingFee:   snapshot.Pricing.HandlingFee,
		GrandTotal:    snapshot.Pricing.GrandTotal,
		Slot:          input.Slot,
		DeliveryLabel: label,
		PaymentMethod: input.PaymentMethod,
		PlacedAt:      time.Now(),
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, domainerrors.NewStorageError(err, "save order "+order.ID)
	}

	if err := s.publisher.PublishOrderPlaced(ctx, newOrderPlacedEvent(ctx, order)); err != nil {
		// The order is stored, a lost event must not fail checkout
		s.log(ctx).Warn("Failed to publish order event",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	// Only what was ordered leaves the cart, items added meanwhile stay
	s.cart.Deduct(ctx, order.Items)

	s.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID),
		slog.Int64("grand_total", order.GrandTotal),
		slog.String("slot", string(order.Slot)),
	)

	return order, nil
}

func newOrderPlacedEvent(ctx context.Context, order *entity.Order) *service.OrderPlacedEvent {
	lines := make([]service.OrderLineRef, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, service.OrderLineRef{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	return &service.OrderPlacedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID,
		TotalItems: order.TotalItems,
		GrandTotal: order.GrandTotal,
		Slot:       string(order.Slot),
		Payment:    string(order.PaymentMethod),
		Lines:      lines,
		PlacedAt:   order.PlacedAt,
	}
}

func (s *checkoutService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID)
		}

		return nil, domainerrors.NewStorageError(err, "load order "+orderID)
	}

	return order, nil
}

// TrackingQR renders the tracking QR of a stored order
func (s *checkoutService) TrackingQR(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeSvc.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate order QR")
	}

	return png, nil
}

// LookupByQR resolves a scanned tracking URL to its order
func (s *checkoutService) LookupByQR(ctx context.Context, qrData string) (*entity.Order, error) {
	orderID, err := s.qrCodeSvc.ParseOrderQR(strings.TrimSpace(qrData))
	if err != nil {
		s.log(ctx).Debug("Unrecognized tracking code", slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WithDetails("not a BlinkBuy tracking code")
	}

	return s.GetOrder(ctx, orderID)
}
