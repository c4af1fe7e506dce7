package service

import (
	"context"
	"fmt"
	"strings"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/engine"
)

// GetRanking returns the champion and the ordered contenders of a platform.
// It fails only when no snapshot can be obtained at all.
func (s *RankingService) GetRanking(ctx context.Context, platform domain.Platform) (engine.Leaderboard, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return engine.Leaderboard{Platform: platform, Contenders: []engine.Contender{}}, err
	}

	opts := engine.DefaultRankOptions(s.now())
	opts.RecencyWindowDays = s.opts.RecencyWindowDays
	lb := engine.Rank(snap, platform, opts)

	s.logger.Debug().
		Str("platform", string(platform)).
		Int("contenders", len(lb.Contenders)).
		Bool("has_champion", lb.Champion != nil).
		Msg("ranking computed")
	return lb, nil
}

func (s *RankingService) ListFighters(ctx context.Context, platform domain.Platform, query string) ([]domain.Fighter, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.SearchFighters(platform, query), nil
}

func (s *RankingService) ListFights(ctx context.Context, platform domain.Platform, query string) ([]domain.Fight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.SearchFights(platform, query), nil
}

// GetFighter returns a fighter with every fight it took part in.
func (s *RankingService) GetFighter(ctx context.Context, name string, platform domain.Platform) (domain.Fighter, []domain.Fight, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.Fighter{}, nil, err
	}
	f, ok := snap.Fighter(name, platform)
	if !ok {
		return domain.Fighter{}, nil, fmt.Errorf("%w: no fighter %q on %s", domain.ErrInvalidReference, strings.TrimSpace(name), platform)
	}
	return f, snap.FightsFor(f.Name, platform), nil
}

// Champions returns the reigning champion of every platform that has one.
func (s *RankingService) Champions(ctx context.Context) ([]domain.Fighter, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Fighter
	for _, p := range domain.Platforms {
		if f, ok := snap.Champion(p); ok {
			out = append(out, f)
		}
	}
	return out, nil
}
