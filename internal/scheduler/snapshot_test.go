package scheduler

import (
	"context"
	"testing"
	"time"

	"satei_admin_backend/internal/leads/classify"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testStore(t *testing.T) (*SnapshotStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSnapshotStoreWithClient(rdb, time.Hour), mr
}

func TestSnapshotRoundTrip(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	counts := map[classify.Category]int{
		classify.CategoryAll:           12,
		classify.CategoryCallDueNoInfo: 3,
		classify.CategoryUnpriced:      0,
	}

	if err := store.Save(ctx, "2025-06-15", counts); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, ok, err := store.Load(ctx, "2025-06-15")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected snapshot to exist")
	}
	if loaded[classify.CategoryAll] != 12 || loaded[classify.CategoryCallDueNoInfo] != 3 {
		t.Fatalf("unexpected snapshot contents: %v", loaded)
	}
	if loaded[classify.CategoryUnpriced] != 0 {
		t.Fatalf("zero counts must survive the round trip, got %v", loaded)
	}
}

func TestSnapshotLoadMissing(t *testing.T) {
	store, _ := testStore(t)

	_, ok, err := store.Load(context.Background(), "2025-06-14")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ok {
		t.Fatal("missing snapshot must report absent, not error")
	}
}

func TestSnapshotRetentionTTL(t *testing.T) {
	store, mr := testStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "2025-06-15", map[classify.Category]int{classify.CategoryAll: 1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if ttl := mr.TTL(snapshotKeyPrefix + "2025-06-15"); ttl <= 0 || ttl > time.Hour {
		t.Fatalf("expected bounded retention TTL, got %v", ttl)
	}
}
