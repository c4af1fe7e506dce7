package engine

import (
	"cmp"
	"slices"
	"time"
	"ufl-rankings/internal/constants"
	"ufl-rankings/internal/domain"
)

type RankOptions struct {
	Now               time.Time
	RecencyWindowDays int
	RecencyBonus      int
	Limit             int
}

func DefaultRankOptions(now time.Time) RankOptions {
	return RankOptions{
		Now:               now,
		RecencyWindowDays: constants.RecencyWindowDays,
		RecencyBonus:      constants.RecencyBonus,
		Limit:             constants.ContenderLimit,
	}
}

type Contender struct {
	Fighter    domain.Fighter
	Position   int
	Score      int
	RecentWins int
}

type Leaderboard struct {
	Platform   domain.Platform
	Champion   *domain.Fighter
	Contenders []Contender
}

// BaseScore is the record component of a contender's score.
func BaseScore(r domain.Record) int {
	return 5*r.Wins - 2*r.Losses + 2*r.KOWins
}

// DateOnly truncates t to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Rank orders the contenders of a platform. The champion is reported
// separately and never ranked.
//
// The comparator puts head-to-head results ahead of score: if one fighter has
// beaten the other more often it ranks first whatever the scores are, otherwise
// the higher score wins and equal scores keep snapshot order. Head-to-head
// cycles are not resolved; the stable sort's result is accepted.
func Rank(s *Snapshot, platform domain.Platform, opts RankOptions) Leaderboard {
	lb := Leaderboard{Platform: platform, Contenders: []Contender{}}
	if champ, ok := s.Champion(platform); ok {
		lb.Champion = &champ
	}

	cutoff := DateOnly(opts.Now).AddDate(0, 0, -opts.RecencyWindowDays)
	recent := make(map[string]int)
	beats := make(map[string]map[string]int)
	for _, f := range s.Fights {
		if f.Platform != platform || domain.IsDraw(f.Winner) {
			continue
		}
		w, l := domain.NameKey(f.Winner), domain.NameKey(f.Loser())
		if beats[w] == nil {
			beats[w] = make(map[string]int)
		}
		beats[w][l]++
		if !DateOnly(f.Date).Before(cutoff) {
			recent[w]++
		}
	}

	for _, f := range s.FightersOf(platform) {
		if f.Champion {
			continue
		}
		k := domain.NameKey(f.Name)
		lb.Contenders = append(lb.Contenders, Contender{
			Fighter:    f,
			Score:      BaseScore(f.Record) + opts.RecencyBonus*recent[k],
			RecentWins: recent[k],
		})
	}

	slices.SortStableFunc(lb.Contenders, func(a, b Contender) int {
		ak, bk := domain.NameKey(a.Fighter.Name), domain.NameKey(b.Fighter.Name)
		aBeatsB, bBeatsA := beats[ak][bk], beats[bk][ak]
		if aBeatsB != bBeatsA {
			return cmp.Compare(bBeatsA, aBeatsB)
		}
		return cmp.Compare(b.Score, a.Score)
	})

	if opts.Limit > 0 && len(lb.Contenders) > opts.Limit {
		lb.Contenders = lb.Contenders[:opts.Limit]
	}
	for i := range lb.Contenders {
		lb.Contenders[i].Position = i + 1
	}
	return lb
}
