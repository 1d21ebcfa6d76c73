package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"blinkbuy/config"
	"blinkbuy/internal/delivery/http/response"
	"blinkbuy/internal/domain/constants"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// SearchHandler serves product search and the search bar
type SearchHandler struct {
	searchUC     usecase.SearchUsecase
	defaultLimit int
	logger       *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	limit := constants.DefaultSearchLimit
	if params.Config.Catalog != nil && params.Config.Catalog.SearchLimit > 0 {
		limit = params.Config.Catalog.SearchLimit
	}

	return &SearchHandler{
		searchUC:     params.SearchUC,
		defaultLimit: limit,
		logger:       params.Logger,
	}
}

// SearchRequest represents the query string of a product search
type SearchRequest struct {
	Query string `query:"q"`
	Limit int    `query:"limit" json:"limit" validate:"gte=0,lte=50"`
}

// SearchResult is a search response
type SearchResult struct {
	Query    string           `json:"query"`
	Products []entity.Product `json:"products"`
}

// Search returns matching products and records non-blank queries as recent searches
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}

	products := h.searchUC.SearchProducts(req.Query, limit)
	if query := strings.TrimSpace(req.Query); query != "" {
		h.searchUC.RecordSearch(c.Request().Context(), query)
	}

	return response.Success(c, http.StatusOK, SearchResult{
		Query:    req.Query,
		Products: nonNil(products),
	}, "Search completed successfully")
}

// Suggestions returns search-bar suggestions for the q parameter
func (h *SearchHandler) Suggestions(c echo.Context) error {
	suggestions := h.searchUC.Suggest(c.Request().Context(), c.QueryParam("q"))

	return response.Success(c, http.StatusOK, nonNil(suggestions), "Suggestions retrieved successfully")
}

// RecentSearches returns the stored queries, newest first
func (h *SearchHandler) RecentSearches(c echo.Context) error {
	recent := h.searchUC.RecentSearches(c.Request().Context())

	return response.Success(c, http.StatusOK, nonNil(recent), "Recent searches retrieved successfully")
}

// ClearRecentSearches forgets all recent searches
func (h *SearchHandler) ClearRecentSearches(c echo.Context) error {
	h.searchUC.ClearRecentSearches(c.Request().Context())

	return response.Success(c, http.StatusOK, []string{}, "Recent searches cleared")
}
