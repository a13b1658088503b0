package timer

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	started := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	in := &State{
		AppointmentID: 7,
		Running:       true,
		Elapsed:       42,
		Target:        1800,
		StartedAt:     &started,
	}

	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, in.AppointmentID, out.AppointmentID)
	assert.Equal(t, in.Running, out.Running)
	assert.Equal(t, in.Elapsed, out.Elapsed)
	assert.Equal(t, in.Target, out.Target)
	require.NotNil(t, out.StartedAt)
	assert.True(t, out.StartedAt.Equal(started))
}

func TestRedisStoreLoadMissingReturnsNil(t *testing.T) {
	store := newRedisStore(t)

	out, err := store.Load(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRedisStoreDelete(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &State{AppointmentID: 7, Target: 100}))
	require.NoError(t, store.Delete(ctx, 7))

	out, err := store.Load(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, out)

	// delete de chave inexistente não é erro
	assert.NoError(t, store.Delete(ctx, 7))
}

func TestRedisStoreTrackerIntegration(t *testing.T) {
	store := newRedisStore(t)
	clock := &fakeClock{now: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)}
	tracker := NewTracker(store, clock.Now)
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	clock.Advance(90 * time.Second)

	snap, err := tracker.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 90, snap.Elapsed, 1)
}
