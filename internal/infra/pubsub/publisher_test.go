package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blinkbuy/config"
	"blinkbuy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		RequestID:  "req-1",
		OrderID:    "BB654321",
		TotalItems: 3,
		GrandTotal: 165,
		Slot:       "10min",
		Payment:    "upi",
		Lines: []service.OrderLineRef{
			{ProductID: "p10", Quantity: 2},
			{ProductID: "p8", Quantity: 1},
		},
		PlacedAt: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	var (
		pushed    PushEnvelope
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&pushed))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "BB654321", pushed.Message.MessageID)
	assert.Equal(t, "order.placed", pushed.Message.Attributes["event_type"])
	assert.Equal(t, "BB654321", pushed.Message.Attributes["order_id"])

	assert.Equal(t, EventTypeOrderPlaced, pushed.EventType())
	assert.Equal(t, localSubscription, pushed.Subscription)

	event, err := pushed.OrderPlaced()
	require.NoError(t, err)
	assert.Equal(t, testEvent(), event)
}

func TestLocalHTTPPublisher_RejectsEventWithoutOrderID(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1/push", slog.Default())

	err := publisher.PublishOrderPlaced(context.Background(), &service.OrderPlacedEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without order id")
}

func TestNewOrderMessage(t *testing.T) {
	msg, err := newOrderMessage(testEvent())
	require.NoError(t, err)

	assert.Equal(t, "BB654321", msg.id)
	assert.Equal(t, "BB654321", msg.orderingKey)
	assert.Equal(t, map[string]string{
		AttrEventType: EventTypeOrderPlaced,
		AttrOrderID:   "BB654321",
		AttrSlot:      "10min",
		AttrRequestID: "req-1",
	}, msg.attributes)

	untraced := testEvent()
	untraced.RequestID = ""
	msg, err = newOrderMessage(untraced)
	require.NoError(t, err)
	assert.NotContains(t, msg.attributes, AttrRequestID)

	_, err = newOrderMessage(nil)
	assert.Error(t, err)
}

func TestPushEnvelope_RoundTrip(t *testing.T) {
	msg, err := newOrderMessage(testEvent())
	require.NoError(t, err)

	publishedAt := time.Date(2026, 10, 15, 15, 30, 0, 0, time.FixedZone("IST", 19800))
	envelope := msg.pushEnvelope("projects/p/subscriptions/s", publishedAt)
	assert.Equal(t, "2026-10-15T10:00:00Z", envelope.Message.PublishTime)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded PushEnvelope
	require.NoError(t, json.Unmarshal(raw, &decoded))
	event, err := decoded.OrderPlaced()
	require.NoError(t, err)
	assert.Equal(t, testEvent(), event)
}

func TestPushEnvelope_OrderPlacedRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not base64", data: "%%%"},
		{name: "not json", data: base64.StdEncoding.EncodeToString([]byte("nope"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := PushEnvelope{Message: PushedMessage{Data: tt.data}}
			_, err := envelope.OrderPlaced()
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishOrderPlaced(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8090/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "blinkbuy"}, wantErr: "topic ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.Default(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: slog.Default()}

	assert.NoError(t, publisher.PublishOrderPlaced(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}
