package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/core/store"
)

// recordingSnapshotRepo keeps the last persisted snapshot (as a deep copy,
// the way a real save would) and counts saves, so tests can assert both what
// was persisted and that failed operations persisted nothing.
type recordingSnapshotRepo struct {
	mu        sync.Mutex
	saveCalls int
	lastSaved *domain.Snapshot
}

func (r *recordingSnapshotRepo) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	return nil, apperrors.ErrNotFound
}

func (r *recordingSnapshotRepo) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	var copied domain.Snapshot
	if err := json.Unmarshal(raw, &copied); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	r.lastSaved = &copied
	return nil
}

func (r *recordingSnapshotRepo) SaveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveCalls
}

func (r *recordingSnapshotRepo) LastSaved() *domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSaved
}

// memoryMarkers is an in-memory MarkerRepository.
type memoryMarkers struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryMarkers() *memoryMarkers {
	return &memoryMarkers{values: map[string]string{}}
}

func (m *memoryMarkers) GetMarker(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return value, nil
}

func (m *memoryMarkers) SetMarker(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryMarkers) ClearMarker(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryMarkers) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

// newSeededStore builds a store over the test repositories and loads it; with
// nothing persisted yet it seeds the default admin and departments, leaving
// one recorded save behind.
func newSeededStore(t *testing.T) (*store.Store, *recordingSnapshotRepo, *memoryMarkers) {
	t.Helper()
	repo := &recordingSnapshotRepo{}
	markers := newMemoryMarkers()
	st := store.New(repo, markers, nil)
	require.NoError(t, st.Load(context.Background()))
	return st, repo, markers
}
