package queue

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/shared/logger"
)

type memoryQueue struct {
	entries []*Entry
}

func (q *memoryQueue) Enqueue(ctx context.Context, entry *Entry) error {
	q.entries = append(q.entries, entry)
	return nil
}

func (q *memoryQueue) Peek(ctx context.Context) (*Entry, error) {
	if len(q.entries) == 0 {
		return nil, nil
	}
	return q.entries[0], nil
}

func (q *memoryQueue) Ack(ctx context.Context) error {
	if len(q.entries) > 0 {
		q.entries = q.entries[1:]
	}
	return nil
}

func (q *memoryQueue) Len(ctx context.Context) (int64, error) {
	return int64(len(q.entries)), nil
}

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(ctx context.Context) error { return p.err }

type recordingApplier struct {
	applied []string
	fail    map[string]error
}

func (a *recordingApplier) Apply(ctx context.Context, entry *Entry) error {
	if err, ok := a.fail[entry.ID]; ok {
		return err
	}
	a.applied = append(a.applied, entry.ID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func mustEntry(t *testing.T, entity, operation string) *Entry {
	t.Helper()
	entry, err := NewEntry(entity, operation, map[string]any{"id": 1})
	require.NoError(t, err)
	return entry
}

func TestEntry_EncodeDecode(t *testing.T) {
	entry, err := NewEntry(EntityTickets, OperationUpdate, map[string]any{"id": 7, "status": "resolved"})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NotZero(t, entry.EnqueuedAt)

	data, err := entry.Encode()
	require.NoError(t, err)

	decoded, err := DecodeEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, decoded.ID)
	assert.Equal(t, EntityTickets, decoded.Entity)
	assert.Equal(t, OperationUpdate, decoded.Operation)
	assert.JSONEq(t, string(entry.Payload), string(decoded.Payload))
}

func TestReplayer_DrainsInEnqueueOrder(t *testing.T) {
	q := &memoryQueue{}
	first := mustEntry(t, EntityTickets, OperationUpdate)
	second := mustEntry(t, EntityTicketHistory, OperationInsert)
	third := mustEntry(t, EntityTickets, OperationUpdate)
	require.NoError(t, q.Enqueue(context.Background(), first))
	require.NoError(t, q.Enqueue(context.Background(), second))
	require.NoError(t, q.Enqueue(context.Background(), third))

	applier := &recordingApplier{}
	r := NewReplayer(q, &stubPinger{}, applier, time.Second, noopLogger{})

	r.drain(context.Background())

	assert.Equal(t, []string{first.ID, second.ID, third.ID}, applier.applied)
	assert.Empty(t, q.entries)
}

func TestReplayer_DatabaseStillDown(t *testing.T) {
	q := &memoryQueue{}
	require.NoError(t, q.Enqueue(context.Background(), mustEntry(t, EntityTickets, OperationUpdate)))

	applier := &recordingApplier{}
	r := NewReplayer(q, &stubPinger{err: errors.New("dial tcp: connection refused")}, applier, time.Second, noopLogger{})

	r.drain(context.Background())

	assert.Empty(t, applier.applied)
	assert.Len(t, q.entries, 1)
}

func TestReplayer_ConnectivityFailureKeepsEntry(t *testing.T) {
	q := &memoryQueue{}
	entry := mustEntry(t, EntityTickets, OperationUpdate)
	require.NoError(t, q.Enqueue(context.Background(), entry))

	netErr := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	applier := &recordingApplier{fail: map[string]error{entry.ID: fmt.Errorf("replay: %w", netErr)}}
	r := NewReplayer(q, &stubPinger{}, applier, time.Second, noopLogger{})

	r.drain(context.Background())

	// entry stays at the head for the next round
	assert.Len(t, q.entries, 1)
}

func TestReplayer_PoisonEntryIsDropped(t *testing.T) {
	q := &memoryQueue{}
	poison := mustEntry(t, "unknown_table", OperationUpdate)
	good := mustEntry(t, EntityTickets, OperationUpdate)
	require.NoError(t, q.Enqueue(context.Background(), poison))
	require.NoError(t, q.Enqueue(context.Background(), good))

	applier := &recordingApplier{fail: map[string]error{poison.ID: errors.New("unknown mutation")}}
	r := NewReplayer(q, &stubPinger{}, applier, time.Second, noopLogger{})

	r.drain(context.Background())

	assert.Equal(t, []string{good.ID}, applier.applied)
	assert.Empty(t, q.entries)
}
