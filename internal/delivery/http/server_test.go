package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blinkbuy/config"
	deliverycontext "blinkbuy/internal/delivery/context"
	"blinkbuy/internal/delivery/http/router"
	"blinkbuy/internal/delivery/http/router/handler"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/infra/catalog"
	"blinkbuy/internal/infra/llm"
	"blinkbuy/internal/infra/pubsub"
	"blinkbuy/internal/infra/qrcode"
	"blinkbuy/internal/infra/storage"
	"blinkbuy/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const testSeed = `
tabs: ["All", "Fresh"]
categories:
  - id: fruits-vegetables
    name: "Fruits & Vegetables"
    icon: "🥬"
    tab: Fresh
  - id: dairy-bread
    name: "Dairy, Bread & Eggs"
    icon: "🥛"
    tab: Fresh
products:
  - id: p1
    name: "Fresh Bananas"
    description: "Ripe bananas"
    price: 45
    originalPrice: 55
    category: fruits-vegetables
    unit: "1 dozen"
    inStock: true
  - id: p2
    name: "Amul Taza Milk"
    description: "Toned milk"
    price: 27
    category: dairy-bread
    unit: "500 ml"
    inStock: true
    tags: ["milk"]
  - id: p3
    name: "Farm Eggs"
    description: "Brown eggs"
    price: 84
    category: dairy-bread
    unit: "6 pcs"
    inStock: true
    tags: ["eggs"]
  - id: p4
    name: "Brown Bread"
    description: "Whole wheat loaf"
    price: 45
    category: dairy-bread
    unit: "400 g"
    inStock: true
`

// fakeProvider answers a user turn with an add_to_cart call and a tool turn with text
func fakeProvider(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []entity.HistoryEntry `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		last := req.Messages[len(req.Messages)-1]
		if last.Role == entity.HistoryRoleTool {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Added milk to your cart!"},"finish_reason":"stop"}]}`))

			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":null,"tool_calls":[` +
			`{"id":"call_1","type":"function","function":{"name":"add_to_cart","arguments":"{\"product_names\":[\"milk\"]}"}}` +
			`]},"finish_reason":"tool_calls"}]}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestEcho(t *testing.T) *echo.Echo {
	seedPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0o600))

	cfg := &config.Config{
		Catalog: &config.CatalogConfig{SeedPath: seedPath, SearchLimit: 6},
		Storage: &config.StorageConfig{Provider: "mem"},
		Assistant: &config.AssistantConfig{
			BaseURL:       fakeProvider(t).URL,
			APIKey:        "test-key",
			Model:         "test-model",
			MaxToolRounds: 5,
		},
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M", BaseURL: "http://localhost:3000"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.DiscardHandler)

	var e *echo.Echo
	app := fxtest.New(t,
		fx.Supply(cfg, logger),
		fx.Provide(context.Background),
		catalog.Module,
		storage.Module,
		llm.Module,
		pubsub.Module,
		fx.Provide(
			qrcode.NewFromConfig,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewSearchService,
			impl.NewCheckoutService,
			impl.NewAssistantService,
		),
		handler.Module,
		fx.Invoke(func(params router.RouterParams) {
			e = NewEcho(cfg, logger, params)
		}),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return e
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))

	return v
}

type cartView struct {
	Items []struct {
		Product  entity.Product `json:"product"`
		Quantity int            `json:"quantity"`
	} `json:"items"`
	TotalItems int   `json:"totalItems"`
	TotalPrice int64 `json:"totalPrice"`
	Pricing    struct {
		DeliveryFee int64 `json:"deliveryFee"`
		GrandTotal  int64 `json:"grandTotal"`
	} `json:"pricing"`
}

func TestServer_HealthAndRequestID(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_Catalog(t *testing.T) {
	e := newTestEcho(t)

	_, env := doRequest(t, e, http.MethodGet, "/api/products?category=dairy-bread", nil)
	assert.Len(t, decodeData[[]entity.Product](t, env), 3)

	_, env = doRequest(t, e, http.MethodGet, "/api/products", nil)
	assert.Len(t, decodeData[[]entity.Product](t, env), 4)

	_, env = doRequest(t, e, http.MethodGet, "/api/categories?tab=Fresh", nil)
	assert.Len(t, decodeData[[]entity.Category](t, env), 2)

	_, env = doRequest(t, e, http.MethodGet, "/api/tabs", nil)
	assert.Equal(t, []string{"All", "Fresh"}, decodeData[[]string](t, env))

	rec, env := doRequest(t, e, http.MethodGet, "/api/products/p1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fresh Bananas", decodeData[entity.Product](t, env).Name)

	rec, env = doRequest(t, e, http.MethodGet, "/api/products/p404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestServer_SearchRecordsRecentQueries(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodGet, "/api/search?q=milk", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeData[handler.SearchResult](t, env)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "p2", result.Products[0].ID)

	_, env = doRequest(t, e, http.MethodGet, "/api/search/recent", nil)
	assert.Equal(t, []string{"milk"}, decodeData[[]string](t, env))

	_, env = doRequest(t, e, http.MethodGet, "/api/search/suggestions?q=dairy", nil)
	assert.NotEmpty(t, decodeData[[]json.RawMessage](t, env))

	rec, _ = doRequest(t, e, http.MethodGet, "/api/search?q=milk&limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	doRequest(t, e, http.MethodDelete, "/api/search/recent", nil)
	_, env = doRequest(t, e, http.MethodGet, "/api/search/recent", nil)
	assert.Empty(t, decodeData[[]string](t, env))
}

func TestServer_CartLifecycle(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodPost, "/api/cart/items", map[string]any{"productId": "p2", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeData[cartView](t, env)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, int64(54), cart.TotalPrice)
	assert.Equal(t, int64(25), cart.Pricing.DeliveryFee)

	_, env = doRequest(t, e, http.MethodPost, "/api/cart/items", map[string]any{"productId": "p1"})
	assert.Equal(t, 3, decodeData[cartView](t, env).TotalItems)

	_, env = doRequest(t, e, http.MethodPut, "/api/cart/items/p2", map[string]any{"quantity": 5})
	assert.Equal(t, 6, decodeData[cartView](t, env).TotalItems)

	rec, env = doRequest(t, e, http.MethodPost, "/api/cart/items", map[string]any{"productId": "p2", "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = doRequest(t, e, http.MethodPost, "/api/cart/items", map[string]any{"productId": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	rec, _ = doRequest(t, e, http.MethodPut, "/api/cart/items/p2", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, env = doRequest(t, e, http.MethodDelete, "/api/cart/items/p2", nil)
	assert.Equal(t, 1, decodeData[cartView](t, env).TotalItems)

	_, env = doRequest(t, e, http.MethodDelete, "/api/cart", nil)
	assert.Empty(t, decodeData[cartView](t, env).Items)
}

func TestServer_Checkout(t *testing.T) {
	e := newTestEcho(t)
	order := map[string]any{"slot": "10min", "paymentMethod": "upi"}

	rec, env := doRequest(t, e, http.MethodPost, "/api/checkout/orders", order)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "CART_EMPTY", env.Error.Code)

	doRequest(t, e, http.MethodPost, "/api/cart/items", map[string]any{"productId": "p3", "quantity": 1})

	rec, env = doRequest(t, e, http.MethodPost, "/api/checkout/orders", map[string]any{"slot": "scheduled", "paymentMethod": "upi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	_, env = doRequest(t, e, http.MethodGet, "/api/checkout/quote", nil)
	assert.Contains(t, string(env.Data), `"slots"`)

	rec, env = doRequest(t, e, http.MethodPost, "/api/checkout/orders", order)
	require.Equal(t, http.StatusCreated, rec.Code)
	placed := decodeData[handler.PlacedOrder](t, env)
	assert.Regexp(t, `^BB\d{6}$`, placed.Order.ID)
	assert.Equal(t, int64(84+25+4), placed.Order.GrandTotal)
	assert.NotEmpty(t, placed.TrackingQR)

	_, env = doRequest(t, e, http.MethodGet, "/api/cart", nil)
	assert.Empty(t, decodeData[cartView](t, env).Items)

	_, env = doRequest(t, e, http.MethodGet, "/api/orders/"+placed.Order.ID, nil)
	assert.Equal(t, placed.Order.ID, decodeData[entity.Order](t, env).ID)

	rec, _ = doRequest(t, e, http.MethodGet, "/api/orders/"+placed.Order.ID+"/qr", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	_, env = doRequest(t, e, http.MethodGet, "/api/orders/lookup?code=http://localhost:3000/orders/"+placed.Order.ID, nil)
	assert.Equal(t, placed.Order.ID, decodeData[entity.Order](t, env).ID)

	rec, env = doRequest(t, e, http.MethodGet, "/api/orders/lookup?code=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = doRequest(t, e, http.MethodGet, "/api/orders/BB000000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
}

func TestServer_Assistant(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodPost, "/api/assistant/messages", map[string]any{"message": "add milk"})
	require.Equal(t, http.StatusOK, rec.Code)
	reply := decodeData[entity.ChatMessage](t, env)
	assert.Equal(t, "Added milk to your cart!", reply.Content)
	require.Len(t, reply.AddedProducts, 1)
	assert.Equal(t, "p2", reply.AddedProducts[0].ID)

	_, env = doRequest(t, e, http.MethodGet, "/api/cart", nil)
	assert.Equal(t, 1, decodeData[cartView](t, env).TotalItems)

	_, env = doRequest(t, e, http.MethodGet, "/api/assistant/messages", nil)
	transcript := decodeData[handler.Transcript](t, env)
	assert.Len(t, transcript.Messages, 3)
	assert.False(t, transcript.IsTyping)

	rec, env = doRequest(t, e, http.MethodPost, "/api/assistant/messages", map[string]any{"message": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_MESSAGE", env.Error.Code)

	rec, env = doRequest(t, e, http.MethodPost, "/api/assistant/messages", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "message is required")

	rec, env = doRequest(t, e, http.MethodPost, "/api/assistant/suggestions", map[string]any{"productIds": []string{"p1", "p4"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Added 2 items to your cart! 🎉", decodeData[entity.ChatMessage](t, env).Content)

	rec, _ = doRequest(t, e, http.MethodPost, "/api/assistant/suggestions", map[string]any{"productIds": []string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, env = doRequest(t, e, http.MethodDelete, "/api/assistant/messages", nil)
	assert.Len(t, decodeData[handler.Transcript](t, env).Messages, 1)
}

func TestServer_ChatProxy(t *testing.T) {
	e := newTestEcho(t)

	body := map[string]any{
		"messages":    []map[string]any{{"role": "user", "content": "add milk"}},
		"cartContext": "Cart is empty.",
	}
	rec, _ := doRequest(t, e, http.MethodPost, "/api/ai/chat", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"add_to_cart"`)

	rec, env := doRequest(t, e, http.MethodPost, "/api/ai/chat", map[string]any{"messages": []any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
