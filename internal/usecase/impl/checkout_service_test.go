package impl

import (
	"context"
	"sync"
	"testing"

	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/domain/entity"
	domainerrors "blinkbuy/internal/domain/errors"
	"blinkbuy/internal/domain/repository"
	"blinkbuy/internal/domain/service"
	mockRepo "blinkbuy/internal/mocks/repository"
	mockSvc "blinkbuy/internal/mocks/service"
	"blinkbuy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	cart      usecase.CartUsecase
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
	qrCodeSvc *mockSvc.MockQRCodeService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	cart, _ := newTestCart(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrCodeSvc := mockSvc.NewMockQRCodeService(t)

	return checkoutServiceFixtures{
		service:   NewCheckoutService(cart, orderRepo, publisher, qrCodeSvc, testLogger()),
		cart:      cart,
		orderRepo: orderRepo,
		publisher: publisher,
		qrCodeSvc: qrCodeSvc,
	}
}

func (fx checkoutServiceFixtures) fillCart(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, fx.cart.AddToCart(ctx, productByID("p1"), 2))
	require.NoError(t, fx.cart.AddToCart(ctx, productByID("p5"), 1))
}

func TestCheckoutService_Quote(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.fillCart(t)

	quote := fx.service.Quote()

	assert.Equal(t, 3, quote.TotalItems)
	assert.Equal(t, int64(153), quote.Pricing.Subtotal)
	assert.Equal(t, int64(182), quote.Pricing.GrandTotal)
	require.Len(t, quote.Slots, 3)
	assert.Equal(t, entity.DeliverySlot10Min, quote.Slots[0].ID)
	assert.Equal(t, "Deliver in 10 minutes", quote.Slots[0].Label)
	assert.Equal(t, entity.DeliverySlotScheduled, quote.Slots[2].ID)
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.fillCart(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	var saved *entity.Order
	fx.orderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { saved = order }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.MatchedBy(func(event *service.OrderPlacedEvent) bool {
			return event.RequestID == "req-1" &&
				event.GrandTotal == 182 &&
				event.TotalItems == 3 &&
				len(event.Lines) == 2 &&
				event.Lines[0] == service.OrderLineRef{ProductID: "p1", Quantity: 2}
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlot10Min,
		PaymentMethod: entity.PaymentMethodUPI,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^BB\d{6}$`, order.ID)
	assert.Same(t, saved, order)
	assert.Equal(t, "Deliver in 10 minutes", order.DeliveryLabel)
	assert.Equal(t, int64(153), order.Subtotal)
	assert.Equal(t, int64(25), order.DeliveryFee)
	assert.Equal(t, int64(4), order.HandlingFee)
	assert.Equal(t, int64(182), order.GrandTotal)
	assert.Equal(t, 3, order.TotalItems)
	assert.Len(t, order.Items, 2)
	assert.False(t, order.PlacedAt.IsZero())

	assert.Empty(t, fx.cart.Items())
}

func TestCheckoutService_PlaceOrder_ScheduledLabel(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.fillCart(t)

	fx.orderRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlotScheduled,
		ScheduledDate: "2026-10-20",
		ScheduledTime: "18:30",
		PaymentMethod: entity.PaymentMethodCOD,
	})
	require.NoError(t, err)
	assert.Equal(t, "Scheduled: 2026-10-20 at 18:30", order.DeliveryLabel)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
}

func TestCheckoutService_PlaceOrder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.PlaceOrderInput
		wantErr error
	}{
		{
			name:    "unknown slot",
			input:   usecase.PlaceOrderInput{Slot: "60min", PaymentMethod: entity.PaymentMethodUPI},
			wantErr: domainerrors.ErrInvalidDeliverySlot,
		},
		{
			name:    "scheduled without time",
			input:   usecase.PlaceOrderInput{Slot: entity.DeliverySlotScheduled, ScheduledDate: "2026-10-20", PaymentMethod: entity.PaymentMethodUPI},
			wantErr: domainerrors.ErrInvalidDeliverySlot,
		},
		{
			name:    "scheduled with bad date",
			input:   usecase.PlaceOrderInput{Slot: entity.DeliverySlotScheduled, ScheduledDate: "20/10/2026", ScheduledTime: "10:00", PaymentMethod: entity.PaymentMethodUPI},
			wantErr: domainerrors.ErrInvalidDeliverySlot,
		},
		{
			name:    "scheduled with bad time",
			input:   usecase.PlaceOrderInput{Slot: entity.DeliverySlotScheduled, ScheduledDate: "2026-10-20", ScheduledTime: "25:61", PaymentMethod: entity.PaymentMethodUPI},
			wantErr: domainerrors.ErrInvalidDeliverySlot,
		},
		{
			name:    "unknown payment method",
			input:   usecase.PlaceOrderInput{Slot: entity.DeliverySlot30Min, PaymentMethod: "bitcoin"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			fx.fillCart(t)

			_, err := fx.service.PlaceOrder(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, fx.cart.Items(), 2)
		})
	}
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlot30Min,
		PaymentMethod: entity.PaymentMethodCard,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_PlaceOrder_SaveFailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.fillCart(t)
	saveErr := errors.New("disk full")

	fx.orderRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(saveErr)

	_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlot30Min,
		PaymentMethod: entity.PaymentMethodCard,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Len(t, fx.cart.Items(), 2)
}

func TestCheckoutService_PlaceOrder_PublishFailureStillSucceeds(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.fillCart(t)

	fx.orderRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlot10Min,
		PaymentMethod: entity.PaymentMethodUPI,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Empty(t, fx.cart.Items())
}

func TestCheckoutService_GetOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	stored := &entity.Order{ID: "BB123456", GrandTotal: 100}

	fx.orderRepo.EXPECT().FindByID(ctx, "BB123456").Return(stored, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, "BB000000").Return(nil, repository.ErrOrderNotFound)
	fx.orderRepo.EXPECT().FindByID(ctx, "BB999999").Return(nil, errors.New("io error"))

	order, err := fx.service.GetOrder(ctx, "BB123456")
	require.NoError(t, err)
	assert.Equal(t, stored, order)

	_, err = fx.service.GetOrder(ctx, "BB000000")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	_, err = fx.service.GetOrder(ctx, "BB999999")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_TrackingQR(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByID(ctx, "BB123456").Return(&entity.Order{ID: "BB123456"}, nil)
	fx.qrCodeSvc.EXPECT().GenerateOrderQR("BB123456").Return([]byte("png"), nil)

	png, err := fx.service.TrackingQR(ctx, "BB123456")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	fx.orderRepo.EXPECT().FindByID(ctx, "BB000000").Return(nil, repository.ErrOrderNotFound)
	_, err = fx.service.TrackingQR(ctx, "BB000000")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_LookupByQR(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	const code = "http://localhost:3000/orders/BB123456"

	fx.qrCodeSvc.EXPECT().ParseOrderQR(code).Return("BB123456", nil)
	fx.orderRepo.EXPECT().FindByID(ctx, "BB123456").Return(&entity.Order{ID: "BB123456"}, nil)

	order, err := fx.service.LookupByQR(ctx, "  "+code+" ")
	require.NoError(t, err)
	assert.Equal(t, "BB123456", order.ID)

	fx.qrCodeSvc.EXPECT().ParseOrderQR("garbage").Return("", errors.New("not an order tracking URL"))
	_, err = fx.service.LookupByQR(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_PlaceOrder_KeepsItemsAddedDuringCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.fillCart(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, _ *entity.Order) {
			// The shopper keeps shopping while the order is being stored
			require.NoError(t, fx.cart.AddToCart(ctx, productByID("p1"), 1))
			require.NoError(t, fx.cart.AddToCart(ctx, productByID("p4"), 1))
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlot10Min,
		PaymentMethod: entity.PaymentMethodCOD,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, order.TotalItems)
	assert.Equal(t, []string{"p1", "p4"}, cartProductIDs(fx.cart.Items()))
	assert.Equal(t, 1, fx.cart.GetItemQuantity("p1"))
	assert.Equal(t, 1, fx.cart.GetItemQuantity("p4"))
	assert.Equal(t, 0, fx.cart.GetItemQuantity("p5"))
}

func TestCheckoutService_PlaceOrder_ConcurrentAddsAreNeverLost(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	require.NoError(t, fx.cart.AddToCart(ctx, productByID("p1"), 2))

	fx.orderRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	const adds = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range adds {
			assert.NoError(t, fx.cart.AddToCart(ctx, productByID("p1"), 1))
		}
	}()

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlot30Min,
		PaymentMethod: entity.PaymentMethodCard,
	})
	wg.Wait()
	require.NoError(t, err)

	assert.Equal(t, 2+adds, order.TotalItems+fx.cart.GetItemQuantity("p1"))
}
