package service

import (
	"context"
)

// EmailQueuedEvent tells the mail sender that a queue row is waiting.
type EmailQueuedEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	QueueEntryID   int64  `json:"queue_entry_id"`
	UserID         int64  `json:"user_id"`
	AddressID      int64  `json:"address_id"`
	OldAddressText string `json:"old_address"`
	NewAddressText string `json:"new_address"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEmailQueued publishes a wake-up event for a freshly queued email
	PublishEmailQueued(ctx context.Context, event *EmailQueuedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
