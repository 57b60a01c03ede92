package repository

import (
	"context"

	"addresssync/internal/domain/entity"
	"addresssync/internal/errors"
)

// Domain-specific errors for the email queue.
var (
	// ErrQueueEntryExists is returned when an entry with the same dedup key is already queued.
	ErrQueueEntryExists = errors.New("email queue entry already exists")
)

// EmailQueueRepository appends notification rows for the external mail sender.
type EmailQueueRepository interface {
	// ExistsByKey reports whether an entry with the dedup key is already queued, sent or not.
	ExistsByKey(ctx context.Context, key entity.QueueKey) (bool, error)

	// InsertEntry appends an unsent entry. Returns ErrQueueEntryExists when the
	// dedup key is already taken, including by a concurrent writer.
	InsertEntry(ctx context.Context, entry *entity.EmailQueueEntry) error
}
