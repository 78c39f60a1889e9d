package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/automat/pkg/adapters/redis"
	"github.com/aretw0/automat/pkg/domain"
	"github.com/aretw0/automat/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	ports.RunSnapshotStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	id := "instance-ttl"

	err := store.Save(ctx, id, domain.Snapshot{Current: "open"})
	require.NoError(t, err)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, id)

	// Fast forward time in miniredis for key expiration.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// Index pruning relies on time.Now() for the ZRemRangeByScore cutoff,
	// so wait out the TTL in wall-clock time as well.
	time.Sleep(1200 * time.Millisecond)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err := store.Save(ctx, "my-instance", domain.Snapshot{Current: "closed"})
	require.NoError(t, err)

	assert.True(t, mr.Exists("custom:app:my-instance"), "expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "expected index with custom prefix to exist")

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "my-instance")
}

func TestRedisStore_RoundTripHistory(t *testing.T) {
	_, client := newTestClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	snap := domain.Snapshot{
		Machine: "door",
		Current: "locked",
		History: []domain.HistoryEntry{
			{From: "closed", Input: "lock", To: "locked"},
			{From: "locked", Input: "_audit", To: "locked"},
		},
	}
	require.NoError(t, store.Save(ctx, "d1", snap))

	loaded, err := store.Load(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, snap, loaded, "identifiers round-trip exactly through JSON")
}
