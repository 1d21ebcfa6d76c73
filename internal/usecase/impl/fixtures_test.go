package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"blinkbuy/internal/domain/entity"
	mockRepo "blinkbuy/internal/mocks/repository"
	"blinkbuy/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T {
	return &v
}

// testProducts is a small catalog in a fixed order. "Amul Taza Milk" comes
// before "Milk Bread" so name resolution and prefix ranking disagree.
func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Amul Taza Milk", Description: "Pasteurised toned milk", Price: 27, OriginalPrice: ptr(int64(29)), Category: "dairy", Unit: "500 ml", InStock: true, Tags: []string{"milk"}},
		{ID: "p2", Name: "Farm Fresh Eggs", Description: "Pack of 6 brown eggs", Price: 84, Category: "dairy", Unit: "6 pcs", InStock: true, Tags: []string{"eggs"}},
		{ID: "p3", Name: "Whole Wheat Bread", Description: "Soft sandwich loaf", Price: 45, Category: "dairy", Unit: "400 g", InStock: true},
		{ID: "p4", Name: "Penne Pasta", Description: "Durum wheat penne", Price: 120, Category: "staples", Unit: "500 g", InStock: true, Tags: []string{"pasta"}},
		{ID: "p5", Name: "Tomato Ketchup", Description: "Tangy and sweet", Price: 99, Category: "sauces", Unit: "1 kg", InStock: true},
		{ID: "p6", Name: "Fresh Tomatoes", Description: "Farm picked", Price: 40, Category: "vegetables", Unit: "1 kg", InStock: true, Tags: []string{"tomato"}},
		{ID: "p7", Name: "Milk Bread", Description: "Sweet soft loaf", Price: 35, Category: "dairy", Unit: "350 g", InStock: true},
	}
}

func testCategories() []entity.Category {
	return []entity.Category{
		{ID: "dairy", Name: "Dairy, Bread & Eggs", Icon: "🥛", Tab: "Grocery"},
		{ID: "staples", Name: "Atta, Rice & Pasta", Icon: "🍝", Tab: "Grocery"},
		{ID: "sauces", Name: "Sauces & Spreads", Icon: "🥫", Tab: "Grocery"},
		{ID: "vegetables", Name: "Fruits & Vegetables", Icon: "🥦", Tab: "Fresh"},
	}
}

func productByID(id string) entity.Product {
	for _, product := range testProducts() {
		if product.ID == id {
			return product
		}
	}
	panic("unknown test product " + id)
}

func newTestCatalogRepo(t *testing.T) *mockRepo.MockCatalogRepository {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	catalogRepo.EXPECT().Products().Return(testProducts()).Maybe()
	catalogRepo.EXPECT().Categories().Return(testCategories()).Maybe()
	catalogRepo.EXPECT().Tabs().Return([]string{entity.AllTab, "Grocery", "Fresh"}).Maybe()

	return catalogRepo
}

// cartSaves records every snapshot the cart service persisted.
type cartSaves struct {
	mu    sync.Mutex
	saved []entity.CartItems
}

func (c *cartSaves) record(_ context.Context, items entity.CartItems) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.saved = append(c.saved, items)
}

func (c *cartSaves) last() entity.CartItems {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.saved) == 0 {
		return nil
	}

	return c.saved[len(c.saved)-1]
}

func (c *cartSaves) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.saved)
}

// newTestCart returns a real cart service over a mocked repository that
// starts empty and accepts every save.
func newTestCart(t *testing.T) (usecase.CartUsecase, *cartSaves) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	cartRepo.EXPECT().Load(mock.Anything).Return(entity.CartItems{}, nil)

	saves := &cartSaves{}
	cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Run(saves.record).Return(nil).Maybe()

	return NewCartService(context.Background(), cartRepo, testLogger()), saves
}
