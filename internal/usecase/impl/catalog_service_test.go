package impl

import (
	"testing"

	"blinkbuy/internal/domain/entity"
	domainerrors "blinkbuy/internal/domain/errors"
	"blinkbuy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) usecase.CatalogUsecase {
	return NewCatalogService(newTestCatalogRepo(t))
}

func productIDs(products []entity.Product) []string {
	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	return ids
}

func TestCatalogService_ProductByID(t *testing.T) {
	service := createTestCatalogService(t)

	product, err := service.ProductByID("p4")
	require.NoError(t, err)
	assert.Equal(t, "Penne Pasta", product.Name)

	_, err = service.ProductByID("missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ProductsByCategory(t *testing.T) {
	service := createTestCatalogService(t)

	assert.Equal(t, []string{"p1", "p2", "p3", "p7"}, productIDs(service.ProductsByCategory("dairy")))
	assert.Empty(t, service.ProductsByCategory("unknown"))
}

func TestCatalogService_ProductsByTab(t *testing.T) {
	service := createTestCatalogService(t)

	tests := []struct {
		tab  string
		want []string
	}{
		{tab: entity.AllTab, want: []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}},
		{tab: "Fresh", want: []string{"p6"}},
		{tab: "Grocery", want: []string{"p1", "p2", "p3", "p4", "p5", "p7"}},
		{tab: "Electronics", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			assert.Equal(t, tt.want, productIDs(service.ProductsByTab(tt.tab)))
		})
	}
}

func TestCatalogService_CategoriesByTab(t *testing.T) {
	service := createTestCatalogService(t)

	assert.Len(t, service.CategoriesByTab(entity.AllTab), 4)

	fresh := service.CategoriesByTab("Fresh")
	require.Len(t, fresh, 1)
	assert.Equal(t, "vegetables", fresh[0].ID)
}

func TestCatalogService_CategoryNamesAndTabs(t *testing.T) {
	service := createTestCatalogService(t)

	assert.Equal(t, []string{
		"Dairy, Bread & Eggs", "Atta, Rice & Pasta", "Sauces & Spreads", "Fruits & Vegetables",
	}, service.CategoryNames())
	assert.Equal(t, []string{entity.AllTab, "Grocery", "Fresh"}, service.Tabs())
}

func TestCatalogService_ProductsReturnsCopy(t *testing.T) {
	catalogRepo := newTestCatalogRepo(t)
	service := NewCatalogService(catalogRepo)

	products := service.Products()
	products[0].Name = "changed"

	assert.Equal(t, "Amul Taza Milk", service.Products()[0].Name)
}
