// Package constants holds identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Storage keys of the client-local key/value store.
const (
	StorageKeyCart           = "blinkbuy-cart"
	StorageKeyRecentSearches = "blinkbuy_recent_searches"
	StorageKeyOrderPrefix    = "blinkbuy-order-"
)

// Storage providers.
const (
	StorageProviderFile  = "file"
	StorageProviderMem   = "mem"
	StorageProviderRedis = "redis"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// MaxRecentSearches bounds the recent-searches list.
const MaxRecentSearches = 5

// DefaultSearchLimit is used when a caller passes a non-positive limit.
const DefaultSearchLimit = 6

// Assistant tool names exchanged with the language model.
const (
	ToolSearchProducts         = "search_products"
	ToolAddToCart              = "add_to_cart"
	ToolRemoveFromCart         = "remove_from_cart"
	ToolGetCartContents        = "get_cart_contents"
	ToolClearCart              = "clear_cart"
	ToolSuggestProductsForCart = "suggest_products_for_cart"
)
