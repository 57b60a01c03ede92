package pubsub

import (
	"context"
	"log/slog"

	"addresssync/internal/domain/service"
	"addresssync/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes to a Cloud Pub/Sub topic with per-address ordering.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic, failing fast when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicName := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicName)
	}

	publisher := client.Publisher(topicName)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing email queued events to Google Pub/Sub", slog.String("topic", topicName))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishEmailQueued waits for the server ack so callers can log failures per entry.
func (p *googlePubSubPublisher) PublishEmailQueued(ctx context.Context, event *service.EmailQueuedEvent) error {
	encoded, err := encodeEmailQueued(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        encoded.data,
		Attributes:  encoded.attributes,
		OrderingKey: encoded.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(encoded.orderingKey)

		return errors.Wrapf(err, "failed to publish email queued event %d", event.QueueEntryID)
	}

	p.logger.Debug("[GooglePubSub] Email queued event published",
		slog.Int64("queue_entry_id", event.QueueEntryID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
