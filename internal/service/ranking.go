package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"ufl-rankings/internal/config"
	"ufl-rankings/internal/constants"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/engine"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// Store is the entity store collaborator. Apply must write a change set
// atomically or not at all.
type Store interface {
	Load(ctx context.Context) (*engine.Snapshot, error)
	Apply(ctx context.Context, cs engine.ChangeSet) error
}

type Options struct {
	CacheTTL          time.Duration
	FallbackCache     bool
	RecencyWindowDays int
	Now               func() time.Time
	NewID             func() (string, error)
}

type published struct {
	snap     *engine.Snapshot
	loadedAt time.Time
}

// RankingService is the single entry point for every read and write of the
// fighter set, fight log and champion registry.
//
// Writers are serialized by mu. Each write works on a clone of the current
// snapshot and publishes the clone only after the store accepted the change
// set, so readers always see a whole snapshot.
type RankingService struct {
	store  Store
	opts   Options
	logger zerolog.Logger

	mu       sync.Mutex
	current  atomic.Pointer[published]
	dirty    atomic.Bool
	degraded atomic.Bool
}

func NewRankingService(store Store, cfg *config.Config, logger zerolog.Logger) *RankingService {
	return New(store, Options{
		CacheTTL:          cfg.CacheTTL,
		FallbackCache:     cfg.FallbackCache,
		RecencyWindowDays: cfg.RecencyWindowDays,
	}, logger)
}

func New(store Store, opts Options, logger zerolog.Logger) *RankingService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() (string, error) { return gonanoid.New() }
	}
	return &RankingService{store: store, opts: opts, logger: logger}
}

// Degraded reports whether the last read was served from the fallback cache.
func (s *RankingService) Degraded() bool {
	return s.degraded.Load()
}

func (s *RankingService) now() time.Time {
	return s.opts.Now().UTC()
}

func (s *RankingService) fresh(p *published) bool {
	if p == nil || s.dirty.Load() {
		return false
	}
	return s.opts.CacheTTL <= 0 || s.opts.Now().Sub(p.loadedAt) < s.opts.CacheTTL
}

// snapshot returns the published snapshot for readers, reloading it when it
// is stale.
func (s *RankingService) snapshot(ctx context.Context) (*engine.Snapshot, error) {
	if p := s.current.Load(); s.fresh(p) {
		return p.snap, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, false)
}

// load must be called with mu held.
func (s *RankingService) load(ctx context.Context, forWrite bool) (*engine.Snapshot, error) {
	prev := s.current.Load()
	if s.fresh(prev) {
		return prev.snap, nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	snap, err := s.store.Load(storeCtx)
	if err != nil {
		if !forWrite && s.opts.FallbackCache && prev != nil {
			s.degraded.Store(true)
			s.logger.Warn().Err(err).Time("snapshot_loaded_at", prev.loadedAt).Msg("store unavailable, serving cached snapshot")
			return prev.snap, nil
		}
		s.logger.Error().Err(err).Msg("failed to load snapshot")
		return nil, fmt.Errorf("load snapshot: %w: %w", domain.ErrStoreUnavailable, err)
	}
	s.degraded.Store(false)

	if s.dirty.Load() {
		snap, err = s.verify(storeCtx, snap)
		if err != nil {
			if !forWrite && s.opts.FallbackCache {
				s.degraded.Store(true)
				s.logger.Warn().Err(err).Msg("verification pass failed, serving recomputed snapshot")
				return snap, nil
			}
			return nil, err
		}
	}

	s.publish(snap)
	return snap, nil
}

// verify runs after a failed write: it re-derives every record, drops champion
// slots that no longer resolve and persists whatever drifted.
func (s *RankingService) verify(ctx context.Context, snap *engine.Snapshot) (*engine.Snapshot, error) {
	next := snap.Clone()
	next.RecomputeAll()
	for _, p := range domain.Platforms {
		if name, ok := next.Champions[p]; ok {
			if _, found := next.Fighter(name, p); !found {
				next.SetChampion(p, "")
			}
		}
	}
	for _, f := range next.Fights {
		if _, err := next.Resolve(f.Fighter1, f.Platform); err != nil {
			s.logger.Warn().Str("fight_id", f.ID).Str("fighter", f.Fighter1).Msg("fight references a missing fighter")
		}
		if _, err := next.Resolve(f.Fighter2, f.Platform); err != nil {
			s.logger.Warn().Str("fight_id", f.ID).Str("fighter", f.Fighter2).Msg("fight references a missing fighter")
		}
	}

	cs := engine.Diff(snap, next)
	if cs.Empty() {
		s.dirty.Store(false)
		s.logger.Info().Msg("verification pass found no drift")
		return next, nil
	}
	cs.Stamp(next, s.now())
	if err := s.store.Apply(ctx, cs); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist verification pass")
		return next, fmt.Errorf("verify snapshot: %w: %w", domain.ErrStoreUnavailable, err)
	}
	s.dirty.Store(false)
	s.logger.Warn().
		Int("fighters_repaired", len(cs.UpsertFighters)).
		Int("champions_cleared", len(cs.Champions)).
		Msg("verification pass repaired drift")
	return next, nil
}

func (s *RankingService) publish(snap *engine.Snapshot) {
	s.current.Store(&published{snap: snap, loadedAt: s.opts.Now()})
}

// Result carries the records a mutation touched, as they are after it.
type Result struct {
	Fighters []domain.Fighter
	Fights   []domain.Fight
}

type mutation func(next *engine.Snapshot) (*Result, error)

// mutate runs one write as a single critical section: validate and mutate a
// clone, persist the difference, publish.
func (s *RankingService) mutate(ctx context.Context, op string, fn mutation) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.load(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	next := cur.Clone()
	res, err := fn(next)
	if err != nil {
		s.logger.Debug().Err(err).Str("op", op).Str("kind", domain.Kind(err)).Msg("mutation rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := engine.Diff(cur, next)
	cs.Stamp(next, s.now())

	storeCtx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()
	if err := s.store.Apply(storeCtx, cs); err != nil {
		s.dirty.Store(true)
		s.logger.Error().Err(err).Str("op", op).Msg("failed to persist mutation")
		return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}

	s.publish(next)
	refresh(next, res)
	s.logger.Info().
		Str("op", op).
		Int("fighters", len(res.Fighters)).
		Int("fights", len(res.Fights)).
		Msg("mutation applied")
	return res, nil
}

// refresh replaces the result's records with their stamped values in snap.
// Fights no longer in snap, i.e. deleted ones, are kept as they were.
func refresh(snap *engine.Snapshot, res *Result) {
	for i, f := range res.Fighters {
		if cur, ok := snap.Fighter(f.Name, f.Platform); ok {
			res.Fighters[i] = cur
		}
	}
	for i, f := range res.Fights {
		if cur, ok := snap.Fight(f.ID); ok {
			res.Fights[i] = cur
		}
	}
}
