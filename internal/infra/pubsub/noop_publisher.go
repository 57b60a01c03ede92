package pubsub

import (
	"context"
	"log/slog"

	"addresssync/internal/domain/service"
)

// noopPublisher drops events. The queue row is the source of truth, so a
// deployment without Pub/Sub only loses the wake-up.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishEmailQueued(_ context.Context, event *service.EmailQueuedEvent) error {
	p.logger.Debug("[NoopPubSub] Dropping email queued event", slog.Int64("queue_entry_id", event.QueueEntryID))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
