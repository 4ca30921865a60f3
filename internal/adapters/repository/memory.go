package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/awards/pkg/metrics"
)

const (
	defaultMaxSnapshots          = 1_000
	defaultMetricsUpdateInterval = 5 * time.Second
)

// MemoryStore is a bounded, mutex-guarded in-memory Store.
//
// Snapshots go in and come out as deep copies, so an evaluation can never
// observe a concurrent Put and callers may mutate what they receive.
type MemoryStore struct {
	mu      sync.RWMutex
	byEvent map[string]Snapshot

	maxSnapshots          int
	metricsUpdateInterval time.Duration
	now                   func() time.Time

	wg       sync.WaitGroup
	stopChan chan struct{}
}

// NewMemoryStore constructs a store with configuration options. The metrics
// updater runs until ctx is done or Close is called.
func NewMemoryStore(ctx context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		byEvent:               make(map[string]Snapshot),
		maxSnapshots:          defaultMaxSnapshots,
		metricsUpdateInterval: defaultMetricsUpdateInterval,
		now:                   time.Now,
		stopChan:              make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.startMetricsUpdater(ctx)
	return s
}

// Close stops background goroutines. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
	s.mu.Unlock()
	s.wg.Wait()
	return nil
}

// Put implements Store.
func (s *MemoryStore) Put(ctx context.Context, snap Snapshot) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	id := strings.TrimSpace(snap.EventID)
	if id == "" {
		metrics.RecordErrorByType("invalid_snapshot", "warning")
		return Snapshot{}, fmt.Errorf("%w: empty event id", ErrInvalidSnapshot)
	}

	stored := snap.Clone()
	stored.EventID = id
	stored.Revision = uuid.NewString()
	stored.UpdatedAt = s.now().UTC()

	s.mu.Lock()
	if _, exists := s.byEvent[id]; !exists && len(s.byEvent) >= s.maxSnapshots {
		s.mu.Unlock()
		metrics.RecordSnapshotRejected()
		return Snapshot{}, fmt.Errorf("%w: %d events", ErrCapacity, s.maxSnapshots)
	}
	s.byEvent[id] = stored
	count := len(s.byEvent)
	s.mu.Unlock()

	metrics.RecordSnapshotWrite(len(stored.Roster))
	metrics.UpdateSnapshotsTotal(count)
	return stored.Clone(), nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, eventID string) (Snapshot, error) {
	s.mu.RLock()
	snap, ok := s.byEvent[strings.TrimSpace(eventID)]
	s.mu.RUnlock()
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	return snap.Clone(), nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, eventID string) error {
	id := strings.TrimSpace(eventID)
	s.mu.Lock()
	if _, ok := s.byEvent[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	delete(s.byEvent, id)
	count := len(s.byEvent)
	s.mu.Unlock()

	metrics.RecordSnapshotDelete()
	metrics.UpdateSnapshotsTotal(count)
	return nil
}

// Events implements Store.
func (s *MemoryStore) Events(_ context.Context) []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.byEvent))
	for id := range s.byEvent {
		out = append(out, id)
	}
	s.mu.RUnlock()
	slices.Sort(out)
	return out
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEvent)
}

func (s *MemoryStore) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				metrics.UpdateSnapshotsTotal(s.Count(ctx))
			}
		}
	}()
}
