package storage

import (
	"context"
	"encoding/json"

	"blinkbuy/internal/domain/constants"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/domain/repository"

	"github.com/pkg/errors"
)

// loadJSON decodes the value under key into v. found is false when the key is absent.
func loadJSON(ctx context.Context, store Store, key string, v any) (found bool, err error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}

		return false, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return true, errors.Wrapf(repository.ErrCorruptData, "decode %s: %v", key, err)
	}

	return true, nil
}

func saveJSON(ctx context.Context, store Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return store.Set(ctx, key, data)
}

type cartRepository struct {
	store Store
}

// NewCartRepository stores the cart as a JSON array of {product, quantity}
func NewCartRepository(store Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) Load(ctx context.Context) (entity.CartItems, error) {
	items := entity.CartItems{}
	if _, err := loadJSON(ctx, r.store, constants.StorageKeyCart, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = entity.CartItems{}
	}

	return items, nil
}

func (r *cartRepository) Save(ctx context.Context, items entity.CartItems) error {
	if items == nil {
		items = entity.CartItems{}
	}

	return saveJSON(ctx, r.store, constants.StorageKeyCart, items)
}

func (r *cartRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, constants.StorageKeyCart)
}

type recentSearchRepository struct {
	store Store
}

// NewRecentSearchRepository stores recent queries as a JSON array of strings
func NewRecentSearchRepository(store Store) repository.RecentSearchRepository {
	return &recentSearchRepository{store: store}
}

func (r *recentSearchRepository) Load(ctx context.Context) ([]string, error) {
	var queries []string
	if _, err := loadJSON(ctx, r.store, constants.StorageKeyRecentSearches, &queries); err != nil {
		return nil, err
	}

	return queries, nil
}

func (r *recentSearchRepository) Save(ctx context.Context, queries []string) error {
	if queries == nil {
		queries = []string{}
	}

	return saveJSON(ctx, r.store, constants.StorageKeyRecentSearches, queries)
}

func (r *recentSearchRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, constants.StorageKeyRecentSearches)
}

type orderRepository struct {
	store Store
}

// NewOrderRepository stores each order under its own key
func NewOrderRepository(store Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	return saveJSON(ctx, r.store, constants.StorageKeyOrderPrefix+order.ID, order)
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	found, err := loadJSON(ctx, r.store, constants.StorageKeyOrderPrefix+id, &order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrOrderNotFound
	}

	return &order, nil
}
