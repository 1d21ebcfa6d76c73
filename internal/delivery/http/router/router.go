// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blinkbuy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	SearchHandler    *handler.SearchHandler
	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	AssistantHandler *handler.AssistantHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	searchHandler    *handler.SearchHandler
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	assistantHandler *handler.AssistantHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		searchHandler:    params.SearchHandler,
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		assistantHandler: params.AssistantHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Catalog
	api.GET("/tabs", r.catalogHandler.ListTabs)
	api.GET("/categories", r.catalogHandler.ListCategories)
	api.GET("/products", r.catalogHandler.ListProducts)
	api.GET("/products/:id", r.catalogHandler.GetProduct)

	searchGroup := api.Group("/search")
	{
		searchGroup.GET("", r.searchHandler.Search)
		searchGroup.GET("/suggestions", r.searchHandler.Suggestions)
		searchGroup.GET("/recent", r.searchHandler.RecentSearches)
		searchGroup.DELETE("/recent", r.searchHandler.ClearRecentSearches)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	api.GET("/checkout/quote", r.checkoutHandler.Quote)
	api.POST("/checkout/orders", r.checkoutHandler.PlaceOrder)

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.GET("/lookup", r.checkoutHandler.LookupOrder)
		ordersGroup.GET("/:id", r.checkoutHandler.GetOrder)
		ordersGroup.GET("/:id/qr", r.checkoutHandler.TrackingQR)
	}

	assistantGroup := api.Group("/assistant")
	{
		assistantGroup.GET("/messages", r.assistantHandler.GetMessages)
		assistantGroup.POST("/messages", r.assistantHandler.SendMessage)
		assistantGroup.DELETE("/messages", r.assistantHandler.ClearChat)
		assistantGroup.POST("/suggestions", r.assistantHandler.AddSuggestions)
	}

	// Model proxy
	api.POST("/ai/chat", r.assistantHandler.ChatProxy)
}
