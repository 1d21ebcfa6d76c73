package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/domain/constants"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/domain/repository"
	"blinkbuy/internal/errors"
	"blinkbuy/internal/usecase"
)

type searchService struct {
	catalogRepo repository.CatalogRepository
	recentRepo  repository.RecentSearchRepository
	logger      *slog.Logger

	mu     sync.Mutex
	recent []string
}

// NewSearchService creates a new search service and loads recent searches
func NewSearchService(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	recentRepo repository.RecentSearchRepository,
	logger *slog.Logger,
) usecase.SearchUsecase {
	srv := &searchService{
		catalogRepo: catalogRepo,
		recentRepo:  recentRepo,
		logger:      logger,
	}
	srv.recent = srv.loadRecent(ctx)

	return srv
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *searchService) loadRecent(ctx context.Context) []string {
	queries, err := srv.recentRepo.Load(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load recent searches", slog.Any("error", err))
		if errors.Is(err, repository.ErrCorruptData) {
			_ = srv.recentRepo.Clear(ctx)
		}

		return nil
	}

	return normalizeRecent(queries)
}

// normalizeRecent keeps the first case-insensitive occurrence of each non-blank query
func normalizeRecent(queries []string) []string {
	out := make([]string, 0, constants.MaxRecentSearches)
	for _, query := range queries {
		if strings.TrimSpace(query) == "" || containsFold(out, query) {
			continue
		}
		out = append(out, query)
		if len(out) == constants.MaxRecentSearches {
			break
		}
	}

	return out
}

func containsFold(values []string, target string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, target)
	})
}

// matchesQuery reports whether any searchable field contains the lower-cased query
func matchesQuery(product entity.Product, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(product.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(product.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(product.Category), lowerQuery) {
		return true
	}

	return slices.ContainsFunc(product.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), lowerQuery)
	})
}

// SearchProducts ranks name-prefix matches first and keeps catalog order otherwise
func (srv *searchService) SearchProducts(query string, limit int) []entity.Product {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	if lowerQuery == "" {
		return []entity.Product{}
	}
	if limit <= 0 {
		limit = constants.DefaultSearchLimit
	}

	var prefixed, others []entity.Product
	for _, product := range srv.catalogRepo.Products() {
		if !matchesQuery(product, lowerQuery) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(product.Name), lowerQuery) {
			prefixed = append(prefixed, product)
		} else {
			others = append(others, product)
		}
	}

	matches := append(prefixed, others...)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

// FindProductsByNames takes the first unclaimed catalog product whose name or
// a tag contains each fragment
func (srv *searchService) FindProductsByNames(names []string) []entity.Product {
	found := []entity.Product{}
	seen := make(map[string]struct{})
	products := srv.catalogRepo.Products()

	for _, name := range names {
		fragment := strings.ToLower(strings.TrimSpace(name))
		if fragment == "" {
			continue
		}

		for _, product := range products {
			if _, claimed := seen[product.ID]; claimed {
				continue
			}
			if !nameOrTagContains(product, fragment) {
				continue
			}
			found = append(found, product)
			seen[product.ID] = struct{}{}

			break
		}
	}

	return found
}

func nameOrTagContains(product entity.Product, fragment string) bool {
	if strings.Contains(strings.ToLower(product.Name), fragment) {
		return true
	}

	return slices.ContainsFunc(product.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), fragment)
	})
}

func (srv *searchService) SearchCategories(query string) []entity.Category {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	if lowerQuery == "" {
		return []entity.Category{}
	}

	found := []entity.Category{}
	for _, category := range srv.catalogRepo.Categories() {
		if strings.Contains(strings.ToLower(category.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(category.ID), lowerQuery) {
			found = append(found, category)
		}
	}

	return found
}

// Suggest lists matching categories before matching products
func (srv *searchService) Suggest(ctx context.Context, query string) []usecase.Suggestion {
	if strings.TrimSpace(query) == "" {
		recent := srv.RecentSearches(ctx)
		suggestions := make([]usecase.Suggestion, 0, len(recent))
		for _, q := range recent {
			suggestions = append(suggestions, usecase.Suggestion{Type: usecase.SuggestionRecent, Query: q})
		}

		return suggestions
	}

	categories := srv.SearchCategories(query)
	products := srv.SearchProducts(query, constants.DefaultSearchLimit)

	suggestions := make([]usecase.Suggestion, 0, len(categories)+len(products))
	for i := range categories {
		suggestions = append(suggestions, usecase.Suggestion{Type: usecase.SuggestionCategory, Category: &categories[i]})
	}
	for i := range products {
		suggestions = append(suggestions, usecase.Suggestion{Type: usecase.SuggestionProduct, Product: &products[i]})
	}

	return suggestions
}

// RecordSearch moves query to the head, dropping case-insensitive duplicates
func (srv *searchService) RecordSearch(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	updated := []string{query}
	for _, q := range srv.recent {
		if !strings.EqualFold(q, query) {
			updated = append(updated, q)
		}
	}
	if len(updated) > constants.MaxRecentSearches {
		updated = updated[:constants.MaxRecentSearches]
	}
	srv.recent = updated

	if err := srv.recentRepo.Save(ctx, slices.Clone(updated)); err != nil {
		srv.log(ctx).Warn("Failed to persist recent searches", slog.Any("error", err))
	}
}

func (srv *searchService) RecentSearches(_ context.Context) []string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return append([]string{}, srv.recent...)
}

func (srv *searchService) ClearRecentSearches(ctx context.Context) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.recent = nil
	if err := srv.recentRepo.Clear(ctx); err != nil {
		srv.log(ctx).Warn("Failed to clear recent searches", slog.Any("error", err))
	}
}
