package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/engine"
)

func (s *RankingService) AddFighter(ctx context.Context, name string, platform domain.Platform) (*Result, error) {
	s.logger.Info().Str("name", name).Str("platform", string(platform)).Msg("adding fighter")

	return s.mutate(ctx, "add fighter", func(next *engine.Snapshot) (*Result, error) {
		id, err := s.opts.NewID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate nanoid: %w", err)
		}
		now := s.now()
		f, err := next.AddFighter(domain.Fighter{
			ID:        id,
			Name:      name,
			Platform:  platform,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Fighters: []domain.Fighter{f}}, nil
	})
}

func (s *RankingService) RenameFighter(ctx context.Context, oldName, newName string, platform domain.Platform) (*Result, error) {
	s.logger.Info().Str("old_name", oldName).Str("new_name", newName).Str("platform", string(platform)).Msg("renaming fighter")

	return s.mutate(ctx, "rename fighter", func(next *engine.Snapshot) (*Result, error) {
		f, err := next.Rename(oldName, newName, platform)
		if err != nil {
			return nil, err
		}
		next.Recompute(f.Identity().Key())
		return &Result{
			Fighters: []domain.Fighter{f},
			Fights:   next.FightsFor(f.Name, platform),
		}, nil
	})
}

func (s *RankingService) DeleteFighter(ctx context.Context, name string, platform domain.Platform) (*Result, error) {
	s.logger.Info().Str("name", name).Str("platform", string(platform)).Msg("deleting fighter")

	return s.mutate(ctx, "delete fighter", func(next *engine.Snapshot) (*Result, error) {
		_, gone, err := next.Delete(name, platform)
		if err != nil {
			return nil, err
		}
		affected := engine.Participants(gone...)
		next.Recompute(affected...)
		return &Result{Fighters: collect(next, affected), Fights: gone}, nil
	})
}

// OverrideRecord stores hand-entered aggregates. They stand until the next
// recompute that touches the fighter.
func (s *RankingService) OverrideRecord(ctx context.Context, name string, platform domain.Platform, r domain.Record) (*Result, error) {
	s.logger.Info().Str("name", name).Str("platform", string(platform)).Interface("record", r).Msg("overriding record")

	return s.mutate(ctx, "override record", func(next *engine.Snapshot) (*Result, error) {
		if r.Wins < 0 || r.Losses < 0 || r.Draws < 0 || r.KOWins < 0 {
			return nil, fmt.Errorf("%w: record counts must be non-negative", domain.ErrInvalidInput)
		}
		if r.KOWins > r.Wins {
			return nil, fmt.Errorf("%w: KO wins exceed wins", domain.ErrInvalidInput)
		}
		if !next.SetRecord(name, platform, r) {
			return nil, fmt.Errorf("%w: no fighter %q on %s", domain.ErrInvalidReference, strings.TrimSpace(name), platform)
		}
		f, _ := next.Fighter(name, platform)
		return &Result{Fighters: []domain.Fighter{f}}, nil
	})
}

func (s *RankingService) AddFight(ctx context.Context, in domain.FightInput) (*Result, error) {
	s.logger.Info().
		Str("fighter1", in.Fighter1).
		Str("fighter2", in.Fighter2).
		Str("winner", in.Winner).
		Str("method", string(in.Method)).
		Str("platform", string(in.Platform)).
		Msg("adding fight")

	return s.mutate(ctx, "add fight", func(next *engine.Snapshot) (*Result, error) {
		norm, err := next.NormalizeFight(in)
		if err != nil {
			return nil, err
		}
		id, err := s.opts.NewID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate nanoid: %w", err)
		}
		now := s.now()
		f := domain.Fight{
			ID:        id,
			Fighter1:  norm.Fighter1,
			Fighter2:  norm.Fighter2,
			Winner:    norm.Winner,
			Method:    norm.Method,
			Platform:  norm.Platform,
			Date:      norm.Date,
			CreatedAt: now,
			UpdatedAt: now,
		}
		next.AppendFight(f)

		affected := engine.Participants(f)
		next.Recompute(affected...)
		return &Result{Fighters: collect(next, affected), Fights: []domain.Fight{f}}, nil
	})
}

// EditFight re-validates the edited fight and recomputes both the previous and
// the current participants.
func (s *RankingService) EditFight(ctx context.Context, id string, patch domain.FightPatch) (*Result, error) {
	s.logger.Info().Str("fight_id", id).Msg("editing fight")

	return s.mutate(ctx, "edit fight", func(next *engine.Snapshot) (*Result, error) {
		old, ok := next.Fight(id)
		if !ok {
			return nil, fmt.Errorf("%w: no fight %q", domain.ErrInvalidReference, id)
		}
		norm, err := next.NormalizeFight(patch.Apply(old))
		if err != nil {
			return nil, err
		}
		updated := old
		updated.Fighter1 = norm.Fighter1
		updated.Fighter2 = norm.Fighter2
		updated.Winner = norm.Winner
		updated.Method = norm.Method
		updated.Platform = norm.Platform
		updated.Date = norm.Date
		next.ReplaceFight(updated)

		affected := engine.Participants(old, updated)
		next.Recompute(affected...)
		return &Result{Fighters: collect(next, affected), Fights: []domain.Fight{updated}}, nil
	})
}

func (s *RankingService) DeleteFight(ctx context.Context, id string) (*Result, error) {
	s.logger.Info().Str("fight_id", id).Msg("deleting fight")

	return s.mutate(ctx, "delete fight", func(next *engine.Snapshot) (*Result, error) {
		old, ok := next.RemoveFight(id)
		if !ok {
			return nil, fmt.Errorf("%w: no fight %q", domain.ErrInvalidReference, id)
		}
		affected := engine.Participants(old)
		next.Recompute(affected...)
		return &Result{Fighters: collect(next, affected), Fights: []domain.Fight{old}}, nil
	})
}

// SetChampion assigns a platform's champion. An empty name clears the slot.
func (s *RankingService) SetChampion(ctx context.Context, platform domain.Platform, name string) (*Result, error) {
	s.logger.Info().Str("platform", string(platform)).Str("name", name).Msg("setting champion")

	return s.mutate(ctx, "set champion", func(next *engine.Snapshot) (*Result, error) {
		if !slices.Contains(domain.Platforms, platform) {
			return nil, fmt.Errorf("%w: unknown platform %q", domain.ErrInvalidInput, platform)
		}
		var touched []domain.Fighter
		if prev, ok := next.Champion(platform); ok {
			touched = append(touched, prev)
		}
		if strings.TrimSpace(name) == "" {
			next.SetChampion(platform, "")
		} else {
			display, err := next.Resolve(name, platform)
			if err != nil {
				return nil, err
			}
			next.SetChampion(platform, display)
		}
		if champ, ok := next.Champion(platform); ok {
			touched = append(touched, champ)
		}
		for i, f := range touched {
			touched[i], _ = next.Fighter(f.Name, f.Platform)
		}
		return &Result{Fighters: slices.CompactFunc(touched, func(a, b domain.Fighter) bool { return a.ID == b.ID })}, nil
	})
}

// RecomputeAll re-derives every fighter's record from the fight log.
func (s *RankingService) RecomputeAll(ctx context.Context) (*Result, error) {
	s.logger.Info().Msg("recomputing all records")

	return s.mutate(ctx, "recompute all", func(next *engine.Snapshot) (*Result, error) {
		next.RecomputeAll()
		return &Result{Fighters: next.FightersOf("")}, nil
	})
}

// collect returns the fighters behind keys in snapshot order, skipping keys
// that no longer resolve.
func collect(snap *engine.Snapshot, keys []domain.IdentityKey) []domain.Fighter {
	want := make(map[domain.IdentityKey]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	var out []domain.Fighter
	for _, f := range snap.FightersOf("") {
		if _, ok := want[f.Identity().Key()]; ok {
			out = append(out, f)
		}
	}
	return out
}
