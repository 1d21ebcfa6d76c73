package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/domain/entity"
	domainerrors "blinkbuy/internal/domain/errors"
	"blinkbuy/internal/domain/pricing"
	"blinkbuy/internal/domain/repository"
	"blinkbuy/internal/errors"
	"blinkbuy/internal/usecase"
)

// cartService is the authoritative in-memory cart. Every mutation is persisted
// while the lock is held so stored snapshots follow mutation order.
type cartService struct {
	mu       sync.Mutex
	items    entity.CartItems
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// NewCartService creates the cart and rehydrates it from storage
func NewCartService(ctx context.Context, cartRepo repository.CartRepository, logger *slog.Logger) usecase.CartUsecase {
	srv := &cartService{
		cartRepo: cartRepo,
		logger:   logger,
	}
	srv.items = srv.load(ctx)

	return srv
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// load never fails: missing data yields an empty cart, corrupt data is cleared
func (srv *cartService) load(ctx context.Context) entity.CartItems {
	items, err := srv.cartRepo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrCorruptData):
		srv.log(ctx).Warn("Stored cart is corrupt, starting empty", slog.Any("error", err))
		if clearErr := srv.cartRepo.Clear(ctx); clearErr != nil {
			srv.log(ctx).Warn("Failed to clear corrupt cart", slog.Any("error", clearErr))
		}

		return entity.CartItems{}
	case err != nil:
		srv.log(ctx).Warn("Failed to load cart, starting empty", slog.Any("error", err))

		return entity.CartItems{}
	}

	return sanitize(items)
}

// sanitize enforces one entry per product id and positive quantities on rehydrated data
func sanitize(items entity.CartItems) entity.CartItems {
	clean := make(entity.CartItems, 0, len(items))
	for _, item := range items {
		if item.Product.ID == "" || item.Quantity <= 0 {
			continue
		}
		if idx := clean.IndexOf(item.Product.ID); idx >= 0 {
			clean[idx].Quantity += item.Quantity

			continue
		}
		clean = append(clean, item)
	}

	return clean
}

// persist must be called with mu held. Failures are logged and swallowed.
func (srv *cartService) persist(ctx context.Context) {
	if err := srv.cartRepo.Save(ctx, slices.Clone(srv.items)); err != nil {
		srv.log(ctx).Warn("Failed to persist cart", slog.Any("error", err))
	}
}

// AddToCart increments an existing entry or appends a new one
func (srv *cartService) AddToCart(ctx context.Context, product entity.Product, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.add(product, quantity)
	srv.persist(ctx)

	srv.log(ctx).Debug("Added to cart",
		slog.String("product_id", product.ID),
		slog.Int("quantity", quantity),
	)

	return nil
}

// AddProducts adds each product once and persists a single snapshot
func (srv *cartService) AddProducts(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, product := range products {
		srv.add(product, 1)
	}
	srv.persist(ctx)

	return nil
}

func (srv *cartService) add(product entity.Product, quantity int) {
	if idx := srv.items.IndexOf(product.ID); idx >= 0 {
		srv.items[idx].Quantity += quantity

		return
	}
	srv.items = append(srv.items, entity.CartItem{Product: product, Quantity: quantity})
}

// RemoveFromCart is a no-op for products not in the cart
func (srv *cartService) RemoveFromCart(ctx context.Context, productID string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.remove(productID)
	srv.persist(ctx)
}

func (srv *cartService) remove(productID string) {
	srv.items = slices.DeleteFunc(srv.items, func(item entity.CartItem) bool {
		return item.Product.ID == productID
	})
}

// UpdateQuantity sets the quantity exactly. A positive quantity for a product
// not in the cart changes nothing.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if quantity <= 0 {
		srv.remove(productID)
	} else if idx := srv.items.IndexOf(productID); idx >= 0 {
		srv.items[idx].Quantity = quantity
	}
	srv.persist(ctx)
}

func (srv *cartService) ClearCart(ctx context.Context) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cleared := len(srv.items)
	srv.items = entity.CartItems{}
	srv.persist(ctx)

	return cleared
}

func (srv *cartService) Deduct(ctx context.Context, items entity.CartItems) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, item := range items {
		idx := srv.items.IndexOf(item.Product.ID)
		if idx < 0 {
			continue
		}
		if srv.items[idx].Quantity <= item.Quantity {
			srv.remove(item.Product.ID)

			continue
		}
		srv.items[idx].Quantity -= item.Quantity
	}
	srv.persist(ctx)
}

func (srv *cartService) GetItemQuantity(productID string) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if idx := srv.items.IndexOf(productID); idx >= 0 {
		return srv.items[idx].Quantity
	}

	return 0
}

func (srv *cartService) Items() entity.CartItems {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.items)
}

func (srv *cartService) TotalItems() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.TotalItems()
}

func (srv *cartService) TotalPrice() int64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.TotalPrice()
}

func (srv *cartService) Snapshot() usecase.CartSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	totalPrice := srv.items.TotalPrice()

	return usecase.CartSnapshot{
		Items:      slices.Clone(srv.items),
		TotalItems: srv.items.TotalItems(),
		TotalPrice: totalPrice,
		Pricing:    pricing.Compute(totalPrice),
	}
}
