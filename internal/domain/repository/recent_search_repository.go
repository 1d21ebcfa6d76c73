package repository

import "context"

// RecentSearchRepository persists the recent search queries, newest first.
type RecentSearchRepository interface {
	// Load returns the stored queries or ErrCorruptData.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the stored queries.
	Save(ctx context.Context, queries []string) error

	// Clear removes the stored queries.
	Clear(ctx context.Context) error
}
