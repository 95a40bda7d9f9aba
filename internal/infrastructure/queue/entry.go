package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"fieldserve/internal/shared/biztime"
)

const (
	EntityTickets       = "tickets"
	EntityTicketHistory = "ticket_history"

	OperationInsert = "insert"
	OperationUpdate = "update"
)

// Entry is a single deferred mutation. Payload holds the serialized
// persistence model so replay can fire the same write again verbatim.
type Entry struct {
	ID         string          `json:"id"`
	Entity     string          `json:"entity"`
	Operation  string          `json:"operation"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt int64           `json:"enqueued_at"`
}

func NewEntry(entity, operation string, payload any) (*Entry, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal queue payload: %w", err)
	}

	return &Entry{
		ID:         uuid.NewString(),
		Entity:     entity,
		Operation:  operation,
		Payload:    data,
		EnqueuedAt: biztime.NowUTC().UnixMilli(),
	}, nil
}

func (e *Entry) Encode() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode queue entry: %w", err)
	}
	return data, nil
}

func DecodeEntry(data []byte) (*Entry, error) {
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode queue entry: %w", err)
	}
	return &entry, nil
}
