package usecase

import (
	"context"

	"addresssync/internal/domain/entity"
)

// NotificationReport summarizes one EnqueueNotifications call.
type NotificationReport struct {
	Queued  []*entity.EmailQueueEntry
	Skipped int // Already queued, including concurrent duplicates.
	Failed  int
}

// NotificationUsecase turns address changes into deduplicated email queue entries.
type NotificationUsecase interface {
	// EnqueueNotifications queues one entry per eligible user linked to the
	// changed address, skipping users that already have the same change queued.
	EnqueueNotifications(ctx context.Context, change entity.AddressChange) (*NotificationReport, error)
}
