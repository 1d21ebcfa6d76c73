package pubsub

import (
	"context"
	"log/slog"

	"blinkbuy/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher publishes order events to a Cloud Pub/Sub topic with the
// order id as ordering key
type googlePublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	if err := ensureTopic(ctx, client, projectID, topicID); err != nil {
		_ = client.Close()

		return nil, err
	}

	topic := client.Publisher(topicID)
	topic.EnableMessageOrdering = true

	return &googlePublisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

func ensureTopic(ctx context.Context, client *pubsub.Client, projectID, topicID string) error {
	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		return errors.Wrapf(err, "lookup topic %s", name)
	}

	return nil
}

func (p *googlePublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	msg, err := newOrderMessage(event)
	if err != nil {
		return err
	}

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordering key rejects later publishes until resumed
		p.topic.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "publish order %s", msg.id)
	}

	p.logger.Debug("[GooglePubSub] Order event published",
		slog.String("order_id", msg.id),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client
func (p *googlePublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
