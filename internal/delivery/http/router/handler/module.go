package handler

import "go.uber.org/fx"

// Module provides every HTTP handler
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewCatalogHandler,
		NewSearchHandler,
		NewCartHandler,
		NewCheckoutHandler,
		NewAssistantHandler,
	),
)
