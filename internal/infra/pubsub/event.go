package pubsub

import (
	"encoding/json"
	"strconv"

	"addresssync/internal/domain/service"
	"addresssync/internal/errors"
)

const (
	attrEventType    = "event_type"
	attrQueueEntryID = "queue_entry_id"
	attrAddressID    = "address_id"
	attrRequestID    = "request_id"

	eventTypeEmailQueued = "email_queued"
)

// encodedEvent is the transport-neutral form shared by every publisher.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
	// orderingKey groups wake-ups for one address so the mail sender sees them in queue order.
	orderingKey string
}

func encodeEmailQueued(event *service.EmailQueuedEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("email queued event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode email queued event")
	}

	addressID := strconv.FormatInt(event.AddressID, 10)
	attributes := map[string]string{
		attrEventType:    eventTypeEmailQueued,
		attrQueueEntryID: strconv.FormatInt(event.QueueEntryID, 10),
		attrAddressID:    addressID,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return &encodedEvent{
		data:        data,
		attributes:  attributes,
		orderingKey: "address-" + addressID,
	}, nil
}
