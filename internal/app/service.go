// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "github.com/okian/awards/internal/adapters/repository"
	"github.com/okian/awards/internal/domain/eligibility"
	"github.com/okian/awards/internal/domain/program"
	"github.com/okian/awards/internal/domain/types"
	"github.com/okian/awards/pkg/logger"
	"github.com/okian/awards/pkg/metrics"
)

// Service implements the API dependencies for the award-eligibility system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store

	// Configuration
	maxSnapshots   int
	defaultProgram program.ID
	defaultSort    eligibility.SortKey

	// State
	started   bool
	ownsStore bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMaxSnapshots bounds the number of stored event snapshots.
func WithMaxSnapshots(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSnapshots = n
		}
	}
}

// WithDefaultProgram sets the program used when a request names none.
// Unknown names are ignored.
func WithDefaultProgram(name string) Option {
	return func(s *Service) {
		if id, err := program.Parse(name); err == nil {
			s.defaultProgram = id
		}
	}
}

// WithDefaultSort sets the result order used when a request names none.
// Unknown keys are ignored.
func WithDefaultSort(name string) Option {
	return func(s *Service) {
		if k, err := eligibility.ParseSortKey(name); err == nil {
			s.defaultSort = k
		}
	}
}

// WithStore injects a snapshot store. The service does not close it.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxSnapshots:   1_000,
		defaultProgram: program.V5RC,
		defaultSort:    eligibility.SortDefault,
		logger:         nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	s.logger.Info(ctx, "starting eligibility service...")

	if s.store == nil {
		s.store = repository.NewMemoryStore(ctx, repository.WithMaxSnapshots(s.maxSnapshots))
		s.ownsStore = true
	}

	s.started = true
	s.logger.Info(ctx, "eligibility service started",
		logger.Int("maxSnapshots", s.maxSnapshots),
		logger.String("defaultProgram", string(s.defaultProgram)),
		logger.String("defaultSort", string(s.defaultSort)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping eligibility service...")

	if s.ownsStore {
		if closer, ok := s.store.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
		s.store = nil
		s.ownsStore = false
	}

	s.started = false
	s.logger.Info(context.Background(), "eligibility service stopped")
}

// Programs lists every supported program's rules.
func (s *Service) Programs(_ context.Context) []types.ProgramEntry {
	all := program.All()
	out := make([]types.ProgramEntry, 0, len(all))
	for _, r := range all {
		out = append(out, types.NewProgramEntry(r))
	}
	return out
}

// Evaluate runs an evaluation over inline event data.
func (s *Service) Evaluate(ctx context.Context, req types.EvaluationRequest) (types.Evaluation, error) {
	in := eligibility.Input{
		Roster:    req.Roster,
		Standings: req.Standings,
		SkillRuns: req.SkillRuns,
	}
	return s.evaluate(ctx, in, req.EvaluationQuery)
}

// EvaluateSnapshot runs an evaluation over the stored snapshot of eventID.
func (s *Service) EvaluateSnapshot(ctx context.Context, eventID string, q types.EvaluationQuery) (types.Evaluation, error) {
	store, err := s.getStore()
	if err != nil {
		return types.Evaluation{}, err
	}
	snap, err := store.Get(ctx, eventID)
	if err != nil {
		return types.Evaluation{}, err
	}

	in := eligibility.Input{
		Roster:    snap.Roster,
		Standings: snap.Standings,
		SkillRuns: snap.SkillRuns,
	}
	ev, err := s.evaluate(ctx, in, q)
	if err != nil {
		return types.Evaluation{}, err
	}
	ev.EventID = snap.EventID
	ev.Revision = snap.Revision
	return ev, nil
}

func (s *Service) evaluate(ctx context.Context, in eligibility.Input, q types.EvaluationQuery) (types.Evaluation, error) {
	start := time.Now()

	rules, err := s.resolveProgram(q.Program)
	if err != nil {
		metrics.RecordEvaluationError("unknown_program")
		return types.Evaluation{}, err
	}
	key, err := s.resolveSort(q.Sort)
	if err != nil {
		metrics.RecordEvaluationError("unknown_sort")
		return types.Evaluation{}, err
	}

	in.GradeSplit = q.GradeSplit
	rep := eligibility.Run(rules, in)
	if key != eligibility.SortDefault {
		eligibility.Sort(rep.Results, key)
	}
	shown := q.Filter().Apply(rep.Results)

	ev := types.Evaluation{
		RunID:      uuid.NewString(),
		Program:    string(rules.ID),
		GradeSplit: q.GradeSplit,
		Sort:       string(key),
		Attending:  len(rep.Results),
		Eligible:   rep.Eligible(),
		Results:    make([]types.ResultEntry, 0, len(shown)),
		Pools:      make([]types.PoolEntry, 0, len(rep.Pools)),
	}
	for _, r := range shown {
		ev.Results = append(ev.Results, types.NewResultEntry(rules, r))
	}
	for _, p := range rep.Pools {
		ev.Pools = append(ev.Pools, types.NewPoolEntry(p))
		metrics.RecordPoolSize(p.Criterion, p.Size)
	}

	latency := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordEvaluation(ev.Program, ev.GradeSplit, ev.Attending, ev.Eligible, latency)
	s.log().Debug(ctx, "evaluated eligibility",
		logger.String("runID", ev.RunID),
		logger.String("program", ev.Program),
		logger.Bool("gradeSplit", ev.GradeSplit),
		logger.Int("attending", ev.Attending),
		logger.Int("eligible", ev.Eligible),
		logger.Int("shown", len(ev.Results)),
		logger.Float64("latencyMs", latency),
	)
	return ev, nil
}

// PutSnapshot stores or replaces the input snapshot of eventID.
func (s *Service) PutSnapshot(ctx context.Context, eventID string, data types.EventData) (types.SnapshotEntry, error) {
	store, err := s.getStore()
	if err != nil {
		return types.SnapshotEntry{}, err
	}
	snap, err := store.Put(ctx, repository.Snapshot{
		EventID:   eventID,
		Roster:    data.Roster,
		Standings: data.Standings,
		SkillRuns: data.SkillRuns,
	})
	if err != nil {
		s.log().Warn(ctx, "snapshot rejected", logger.String("eventID", eventID), logger.Error(err))
		return types.SnapshotEntry{}, err
	}
	s.log().Info(ctx, "snapshot stored",
		logger.String("eventID", snap.EventID),
		logger.String("revision", snap.Revision),
		logger.Int("teams", len(snap.Roster)),
		logger.Int("standings", len(snap.Standings)),
		logger.Int("skillRuns", len(snap.SkillRuns)),
	)
	return toSnapshotEntry(snap), nil
}

// Snapshot returns the stored snapshot of eventID.
func (s *Service) Snapshot(ctx context.Context, eventID string) (types.SnapshotEntry, error) {
	store, err := s.getStore()
	if err != nil {
		return types.SnapshotEntry{}, err
	}
	snap, err := store.Get(ctx, eventID)
	if err != nil {
		return types.SnapshotEntry{}, err
	}
	return toSnapshotEntry(snap), nil
}

// DeleteSnapshot removes the stored snapshot of eventID.
func (s *Service) DeleteSnapshot(ctx context.Context, eventID string) error {
	store, err := s.getStore()
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, eventID); err != nil {
		return err
	}
	s.log().Info(ctx, "snapshot deleted", logger.String("eventID", eventID))
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":        s.started,
		"maxSnapshots":   s.maxSnapshots,
		"defaultProgram": string(s.defaultProgram),
		"defaultSort":    string(s.defaultSort),
		"programs":       len(program.All()),
	}

	if s.started {
		count := s.store.Count(ctx)
		stats["snapshots"] = count
		stats["events"] = s.store.Events(ctx)
		metrics.UpdateSnapshotsTotal(count)
	}

	return stats
}

func (s *Service) getStore() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Named("service")
	}
	return s.logger
}

func (s *Service) resolveProgram(name string) (program.Rules, error) {
	id := s.defaultProgram
	if strings.TrimSpace(name) != "" {
		parsed, err := program.Parse(name)
		if err != nil {
			return program.Rules{}, err
		}
		id = parsed
	}
	rules, ok := program.Lookup(id)
	if !ok {
		return program.Rules{}, fmt.Errorf("%w: %q", program.ErrUnknownProgram, id)
	}
	return rules, nil
}

func (s *Service) resolveSort(name string) (eligibility.SortKey, error) {
	if strings.TrimSpace(name) == "" {
		return s.defaultSort, nil
	}
	return eligibility.ParseSortKey(name)
}

func toSnapshotEntry(snap repository.Snapshot) types.SnapshotEntry {
	return types.SnapshotEntry{
		EventID:   snap.EventID,
		Revision:  snap.Revision,
		UpdatedAt: snap.UpdatedAt,
		EventData: types.EventData{
			Roster:    snap.Roster,
			Standings: snap.Standings,
			SkillRuns: snap.SkillRuns,
		},
	}
}
