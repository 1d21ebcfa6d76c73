// Package repository defines the interfaces for the persistence layer.
package repository

import "blinkbuy/internal/domain/entity"

// CatalogRepository exposes the static product catalog in its fixed order.
type CatalogRepository interface {
	// Products returns every product in catalog order.
	Products() []entity.Product

	// Categories returns every category in catalog order.
	Categories() []entity.Category

	// Tabs returns the storefront tab names, "All" first.
	Tabs() []string
}
