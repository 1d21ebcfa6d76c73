package impl

import (
	"slices"

	"blinkbuy/internal/domain/entity"
	domainerrors "blinkbuy/internal/domain/errors"
	"blinkbuy/internal/domain/repository"
	"blinkbuy/internal/usecase"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) Products() []entity.Product {
	return slices.Clone(s.catalogRepo.Products())
}

// ProductByID returns ErrProductNotFound for unknown ids
func (s *catalogService) ProductByID(id string) (entity.Product, error) {
	for _, product := range s.catalogRepo.Products() {
		if product.ID == id {
			return product, nil
		}
	}

	return entity.Product{}, domainerrors.ErrProductNotFound.WithDetails(id)
}

func (s *catalogService) ProductsByCategory(categoryID string) []entity.Product {
	var found []entity.Product
	for _, product := range s.catalogRepo.Products() {
		if product.Category == categoryID {
			found = append(found, product)
		}
	}

	return found
}

// ProductsByTab returns the products of every category on the tab; "All" returns everything
func (s *catalogService) ProductsByTab(tab string) []entity.Product {
	if tab == entity.AllTab {
		return s.Products()
	}

	categoryIDs := make(map[string]struct{})
	for _, category := range s.CategoriesByTab(tab) {
		categoryIDs[category.ID] = struct{}{}
	}

	var found []entity.Product
	for _, product := range s.catalogRepo.Products() {
		if _, ok := categoryIDs[product.Category]; ok {
			found = append(found, product)
		}
	}

	return found
}

func (s *catalogService) Categories() []entity.Category {
	return slices.Clone(s.catalogRepo.Categories())
}

func (s *catalogService) CategoriesByTab(tab string) []entity.Category {
	if tab == entity.AllTab {
		return s.Categories()
	}

	var found []entity.Category
	for _, category := range s.catalogRepo.Categories() {
		if category.Tab == tab {
			found = append(found, category)
		}
	}

	return found
}

// CategoryNames lists category display names for the assistant prompt
func (s *catalogService) CategoryNames() []string {
	categories := s.catalogRepo.Categories()
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}

	return names
}

func (s *catalogService) Tabs() []string {
	return slices.Clone(s.catalogRepo.Tabs())
}
