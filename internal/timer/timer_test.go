package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore guarda estados em memória para testes do Tracker.
type memStore struct {
	mu     sync.Mutex
	states map[uint]*State
}

func newMemStore() *memStore {
	return &memStore{states: make(map[uint]*State)}
}

func (m *memStore) Load(_ context.Context, id uint) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.states[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) Save(_ context.Context, s *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.states[s.AppointmentID] = &cp
	return nil
}

func (m *memStore) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	return nil
}

// fakeClock permite avançar o tempo manualmente.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestTracker() (*Tracker, *memStore, *fakeClock) {
	store := newMemStore()
	clock := &fakeClock{now: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)}
	return NewTracker(store, clock.Now), store, clock
}

func TestStartCreatesRunningTimer(t *testing.T) {
	tracker, _, _ := newTestTracker()
	ctx := context.Background()

	snap, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	assert.True(t, snap.Running)
	assert.Equal(t, int64(0), snap.Elapsed)
	assert.Equal(t, int64(1800), snap.Target)
	assert.False(t, snap.Completed)
	assert.False(t, snap.EarlyFinish)
}

func TestElapsedAdvancesWithWallClock(t *testing.T) {
	tracker, _, clock := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	clock.Advance(90 * time.Second)

	snap, err := tracker.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(90), snap.Elapsed)
}

// Simula reload da página: o estado persistido tem StartedAt 90s no passado;
// um Snapshot novo reconcilia contra o relógio de parede sem perder tempo.
func TestSurvivesReload(t *testing.T) {
	tracker, store, clock := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	clock.Advance(90 * time.Second)

	// "reload": um tracker novo sobre o mesmo store
	reloaded := NewTracker(store, clock.Now)

	snap, err := reloaded.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 90, snap.Elapsed, 1)
	assert.True(t, snap.Running)
}

func TestPausePreservesElapsed(t *testing.T) {
	tracker, _, clock := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	clock.Advance(60 * time.Second)

	snap, err := tracker.Pause(ctx, 1)
	require.NoError(t, err)
	assert.False(t, snap.Running)
	assert.Equal(t, int64(60), snap.Elapsed)

	// pausado: o tempo não avança
	clock.Advance(5 * time.Minute)
	snap, err = tracker.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(60), snap.Elapsed)
}

func TestResumeAccumulates(t *testing.T) {
	tracker, _, clock := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	clock.Advance(60 * time.Second)
	_, err = tracker.Pause(ctx, 1)
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)

	_, err = tracker.Start(ctx, 1, 0)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)

	snap, err := tracker.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(90), snap.Elapsed)
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	tracker, _, clock := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	clock.Advance(45 * time.Second)

	snap, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)
	assert.Equal(t, int64(45), snap.Elapsed)
	assert.True(t, snap.Running)
}

func TestEarlyFinishAtEightyPercent(t *testing.T) {
	tracker, _, clock := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 100)
	require.NoError(t, err)

	clock.Advance(79 * time.Second)
	snap, err := tracker.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.False(t, snap.EarlyFinish)

	clock.Advance(1 * time.Second)
	snap, err = tracker.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.True(t, snap.EarlyFinish)
	assert.False(t, snap.Completed)
}

func TestCompletedAtTarget(t *testing.T) {
	tracker, _, clock := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 100)
	require.NoError(t, err)

	clock.Advance(100 * time.Second)

	snap, err := tracker.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.True(t, snap.Completed)
	assert.True(t, snap.EarlyFinish)
	// atingir o alvo não para o timer
	assert.True(t, snap.Running)
}

func TestStopDiscardsState(t *testing.T) {
	tracker, _, _ := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Start(ctx, 1, 1800)
	require.NoError(t, err)

	require.NoError(t, tracker.Stop(ctx, 1))

	_, err = tracker.Snapshot(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPauseWithoutTimer(t *testing.T) {
	tracker, _, _ := newTestTracker()

	_, err := tracker.Pause(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
