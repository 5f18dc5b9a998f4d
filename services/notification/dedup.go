package notification

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// SeenStore remembers which sessions have already produced an owner email,
// so overlapping webhook and pull triggers send at most one.
type SeenStore interface {
	// MarkIfNew atomically records the session and reports whether it was
	// unseen before this call.
	MarkIfNew(ctx context.Context, sessionID string) (bool, error)
	// Release forgets a session so a failed send can be retried later.
	Release(ctx context.Context, sessionID string) error
}

// MemorySeenStore is the single-process default.
type MemorySeenStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemorySeenStore() *MemorySeenStore {
	return &MemorySeenStore{seen: make(map[string]struct{})}
}

func (s *MemorySeenStore) MarkIfNew(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[sessionID]; ok {
		return false, nil
	}
	s.seen[sessionID] = struct{}{}
	return true, nil
}

func (s *MemorySeenStore) Release(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seen, sessionID)
	return nil
}

const dedupKeyPrefix = "notified:"

// RedisSeenStore shares dedup state across replicas via SETNX.
type RedisSeenStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSeenStore(client *redis.Client, ttl time.Duration) *RedisSeenStore {
	return &RedisSeenStore{Client: client, TTL: ttl}
}

func (s *RedisSeenStore) MarkIfNew(ctx context.Context, sessionID string) (bool, error) {
	return s.Client.SetNX(ctx, dedupKeyPrefix+sessionID, 1, s.TTL).Result()
}

func (s *RedisSeenStore) Release(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, dedupKeyPrefix+sessionID).Err()
}
