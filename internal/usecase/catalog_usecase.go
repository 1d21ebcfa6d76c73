package usecase

import "blinkbuy/internal/domain/entity"

// CatalogUsecase exposes read-only catalog queries
type CatalogUsecase interface {
	Products() []entity.Product
	ProductByID(id string) (entity.Product, error)
	ProductsByCategory(categoryID string) []entity.Product
	ProductsByTab(tab string) []entity.Product
	Categories() []entity.Category
	CategoriesByTab(tab string) []entity.Category
	CategoryNames() []string
	Tabs() []string
}
