package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"blinkbuy/internal/domain/service"

	"github.com/pkg/errors"
)

// EventTypeOrderPlaced is the event_type attribute of order-placed messages
const EventTypeOrderPlaced = "order.placed"

// Message attribute keys.
const (
	AttrEventType = "event_type"
	AttrOrderID   = "order_id"
	AttrSlot      = "slot"
	AttrRequestID = "request_id"
)

// orderMessage is an order event encoded once and handed to any transport
type orderMessage struct {
	id          string
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newOrderMessage(event *service.OrderPlacedEvent) (*orderMessage, error) {
	if event == nil || event.OrderID == "" {
		return nil, errors.New("order event without order id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode order event %s", event.OrderID)
	}

	attributes := map[string]string{
		AttrEventType: EventTypeOrderPlaced,
		AttrOrderID:   event.OrderID,
		AttrSlot:      event.Slot,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return &orderMessage{
		id:          event.OrderID,
		data:        data,
		attributes:  attributes,
		orderingKey: event.OrderID,
	}, nil
}

// PushEnvelope is the JSON body Pub/Sub posts to a push subscription
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage is the message inside a PushEnvelope; Data is base64
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func (m *orderMessage) pushEnvelope(subscription string, publishedAt time.Time) PushEnvelope {
	return PushEnvelope{
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(m.data),
			Attributes:  m.attributes,
			MessageID:   m.id,
			PublishTime: publishedAt.UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}
}

// EventType returns the event_type attribute, empty when the publisher set none
func (e *PushEnvelope) EventType() string {
	return e.Message.Attributes[AttrEventType]
}

// OrderPlaced decodes the order event carried by the envelope
func (e *PushEnvelope) OrderPlaced() (*service.OrderPlacedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.OrderPlacedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode order event")
	}

	return &event, nil
}
