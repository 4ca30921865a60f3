// Package repository holds per-event input snapshots supplied by the data
// collaborators. It never stores evaluation results.
package repository

import (
	"context"
	"slices"
	"time"

	"github.com/okian/awards/internal/domain/model"
)

// Snapshot is the full set of engine inputs for one event.
type Snapshot struct {
	EventID   string
	Revision  string
	Roster    []model.Team
	Standings []model.QualifyingStanding
	SkillRuns []model.RawSkillRun
	UpdatedAt time.Time
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	s.Roster = slices.Clone(s.Roster)
	s.Standings = slices.Clone(s.Standings)
	s.SkillRuns = slices.Clone(s.SkillRuns)
	return s
}

// Store provides read/write access to event snapshots.
type Store interface {
	// Put stores or replaces the snapshot for snap.EventID and returns the
	// stored copy with a fresh revision.
	Put(ctx context.Context, snap Snapshot) (Snapshot, error)

	// Get returns a copy of the snapshot for eventID.
	// Returns ErrNotFound if the event is unknown.
	Get(ctx context.Context, eventID string) (Snapshot, error)

	// Delete removes the snapshot for eventID.
	// Returns ErrNotFound if the event is unknown.
	Delete(ctx context.Context, eventID string) error

	// Events lists stored event ids in ascending order.
	Events(ctx context.Context) []string

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) int
}
