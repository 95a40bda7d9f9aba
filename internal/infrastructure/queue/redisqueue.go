package queue

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const mutationQueueKey = "offline:mutations"

// MutationQueue is an ordered log of deferred writes. Peek/Ack instead
// of a destructive pop so an entry survives a crash mid-replay.
type MutationQueue interface {
	Enqueue(ctx context.Context, entry *Entry) error
	Peek(ctx context.Context) (*Entry, error)
	Ack(ctx context.Context) error
	Len(ctx context.Context) (int64, error)
}

type RedisMutationQueue struct {
	client *redis.Client
}

func NewRedisMutationQueue(client *redis.Client) *RedisMutationQueue {
	return &RedisMutationQueue{client: client}
}

func (q *RedisMutationQueue) Enqueue(ctx context.Context, entry *Entry) error {
	data, err := entry.Encode()
	if err != nil {
		return err
	}

	if err := q.client.RPush(ctx, mutationQueueKey, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue mutation: %w", err)
	}

	return nil
}

// Peek returns the oldest entry without removing it, or nil when the
// queue is empty.
func (q *RedisMutationQueue) Peek(ctx context.Context) (*Entry, error) {
	data, err := q.client.LIndex(ctx, mutationQueueKey, 0).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to peek mutation queue: %w", err)
	}

	return DecodeEntry([]byte(data))
}

func (q *RedisMutationQueue) Ack(ctx context.Context) error {
	if err := q.client.LPop(ctx, mutationQueueKey).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to ack mutation: %w", err)
	}
	return nil
}

func (q *RedisMutationQueue) Len(ctx context.Context) (int64, error) {
	length, err := q.client.LLen(ctx, mutationQueueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read mutation queue length: %w", err)
	}
	return length, nil
}
