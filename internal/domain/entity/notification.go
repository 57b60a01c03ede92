package entity

import "time"

// NotificationIntent is the per-user notification derived from an AddressChange.
type NotificationIntent struct {
	UserID         int64
	AddressID      int64
	OldAddressText string
	NewAddressText string
	Status         Flag
}

// DedupKey returns the normalized tuple that identifies the intent in the email queue.
func (n NotificationIntent) DedupKey() QueueKey {
	return QueueKey{
		UserID:        n.UserID,
		AddressID:     n.AddressID,
		OldAddressKey: NormalizeAddressText(n.OldAddressText),
		NewAddressKey: NormalizeAddressText(n.NewAddressText),
	}
}

// QueueKey is the dedup key of an email queue entry.
type QueueKey struct {
	UserID        int64
	AddressID     int64
	OldAddressKey string
	NewAddressKey string
}

// EmailQueueEntry is a queued notification awaiting the external mail sender.
// IsEmailSent is owned by the sender; this service only writes false.
type EmailQueueEntry struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	AddressID      int64     `json:"address_id"`
	OldAddressText string    `json:"old_address"`
	NewAddressText string    `json:"new_address"`
	OldAddressKey  string    `json:"-"`
	NewAddressKey  string    `json:"-"`
	Status         Flag      `json:"status"`
	IsEmailSent    bool      `json:"is_email_sent"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewEmailQueueEntry builds the unsent queue row for an intent.
func NewEmailQueueEntry(intent NotificationIntent) *EmailQueueEntry {
	key := intent.DedupKey()

	return &EmailQueueEntry{
		UserID:         intent.UserID,
		AddressID:      intent.AddressID,
		OldAddressText: intent.OldAddressText,
		NewAddressText: intent.NewAddressText,
		OldAddressKey:  key.OldAddressKey,
		NewAddressKey:  key.NewAddressKey,
		Status:         intent.Status,
		IsEmailSent:    false,
	}
}

// Key returns the dedup key stored on the entry.
func (e *EmailQueueEntry) Key() QueueKey {
	return QueueKey{
		UserID:        e.UserID,
		AddressID:     e.AddressID,
		OldAddressKey: e.OldAddressKey,
		NewAddressKey: e.NewAddressKey,
	}
}
