package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"satei_admin_backend/internal/leads/classify"

	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "leads:category_counts:"

// SnapshotStore persists daily category-count snapshots in Redis. The API
// always serves live counts; snapshots exist for ops visibility and for
// making the periodic job idempotent across restarts.
type SnapshotStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSnapshotStore connects to Redis using the given URL.
func NewSnapshotStore(redisURL string, ttl time.Duration) (*SnapshotStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return NewSnapshotStoreWithClient(redis.NewClient(opt), ttl), nil
}

// NewSnapshotStoreWithClient wraps an existing client; tests use it with
// miniredis.
func NewSnapshotStoreWithClient(rdb *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{rdb: rdb, ttl: ttl}
}

// Save stores the counts under the date's key with the retention TTL.
func (s *SnapshotStore) Save(ctx context.Context, date string, counts map[classify.Category]int) error {
	payload := make(map[string]int, len(counts))
	for category, count := range counts {
		payload[string(category)] = count
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, snapshotKeyPrefix+date, data, s.ttl).Err()
}

// Load returns the snapshot for the date. The second return is false when no
// snapshot exists.
func (s *SnapshotStore) Load(ctx context.Context, date string) (map[classify.Category]int, bool, error) {
	data, err := s.rdb.Get(ctx, snapshotKeyPrefix+date).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var payload map[string]int
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, err
	}

	counts := make(map[classify.Category]int, len(payload))
	for category, count := range payload {
		counts[classify.Category(category)] = count
	}
	return counts, true, nil
}

// Close releases the Redis connection.
func (s *SnapshotStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
