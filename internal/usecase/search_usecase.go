package usecase

import (
	"context"

	"blinkbuy/internal/domain/entity"
)

// SuggestionType tags a search-bar suggestion
type SuggestionType string

const (
	SuggestionProduct  SuggestionType = "product"
	SuggestionCategory SuggestionType = "category"
	SuggestionRecent   SuggestionType = "recent"
)

// Suggestion is one search-bar entry; exactly one payload field is set
type Suggestion struct {
	Type     SuggestionType   `json:"type"`
	Product  *entity.Product  `json:"product,omitempty"`
	Category *entity.Category `json:"category,omitempty"`
	Query    string           `json:"query,omitempty"`
}

// SearchUsecase covers catalog search, name resolution and recent searches
type SearchUsecase interface {
	// SearchProducts matches name, description, category id and tags, name-prefix matches first
	SearchProducts(query string, limit int) []entity.Product

	// FindProductsByNames resolves free-text fragments to at most one distinct product each
	FindProductsByNames(names []string) []entity.Product

	// SearchCategories matches category names and ids
	SearchCategories(query string) []entity.Category

	// Suggest builds search-bar suggestions; a blank query yields recent searches
	Suggest(ctx context.Context, query string) []Suggestion

	// RecordSearch stores query at the head of the recent searches
	RecordSearch(ctx context.Context, query string)

	// RecentSearches returns the stored queries, newest first
	RecentSearches(ctx context.Context) []string

	// ClearRecentSearches forgets all recent searches
	ClearRecentSearches(ctx context.Context)
}
