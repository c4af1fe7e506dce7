package rpc

import (
	"fmt"
	"strings"
	"time"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/engine"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func FromFighter(f domain.Fighter) Fighter {
	return Fighter{
		ID:        f.ID,
		Name:      f.Name,
		Platform:  string(f.Platform),
		Wins:      f.Record.Wins,
		Losses:    f.Record.Losses,
		Draws:     f.Record.Draws,
		KOWins:    f.Record.KOWins,
		Champion:  f.Champion,
		CreatedAt: formatTime(f.CreatedAt),
		UpdatedAt: formatTime(f.UpdatedAt),
	}
}

func FromFight(f domain.Fight) Fight {
	return Fight{
		ID:        f.ID,
		Fighter1:  f.Fighter1,
		Fighter2:  f.Fighter2,
		Winner:    f.Winner,
		Method:    string(f.Method),
		Platform:  string(f.Platform),
		Date:      f.Date.Format(domain.DateLayout),
		CreatedAt: formatTime(f.CreatedAt),
		UpdatedAt: formatTime(f.UpdatedAt),
	}
}

func FromFighters(in []domain.Fighter) []Fighter {
	out := make([]Fighter, 0, len(in))
	for _, f := range in {
		out = append(out, FromFighter(f))
	}
	return out
}

func FromFights(in []domain.Fight) []Fight {
	out := make([]Fight, 0, len(in))
	for _, f := range in {
		out = append(out, FromFight(f))
	}
	return out
}

func FromLeaderboard(lb engine.Leaderboard) *GetRankingResponse {
	resp := &GetRankingResponse{
		Platform:   string(lb.Platform),
		Contenders: make([]Contender, 0, len(lb.Contenders)),
	}
	if lb.Champion != nil {
		c := FromFighter(*lb.Champion)
		resp.Champion = &c
	}
	for _, c := range lb.Contenders {
		resp.Contenders = append(resp.Contenders, Contender{
			Position:   c.Position,
			Score:      c.Score,
			RecentWins: c.RecentWins,
			Fighter:    FromFighter(c.Fighter),
		})
	}
	return resp
}

// ParsePlatform parses a required platform.
func ParsePlatform(s string) (domain.Platform, error) {
	return domain.ParsePlatform(s)
}

// ParsePlatformFilter parses an optional platform; empty selects every platform.
func ParsePlatformFilter(s string) (domain.Platform, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return domain.ParsePlatform(s)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func (r *AddFightRequest) ToInput() (domain.FightInput, error) {
	platform, err := ParsePlatform(r.Platform)
	if err != nil {
		return domain.FightInput{}, err
	}
	method, err := domain.ParseMethod(r.Method)
	if err != nil {
		return domain.FightInput{}, err
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.FightInput{}, err
	}
	return domain.FightInput{
		Fighter1: r.Fighter1,
		Fighter2: r.Fighter2,
		Winner:   r.Winner,
		Method:   method,
		Platform: platform,
		Date:     date,
	}, nil
}

func (r *EditFightRequest) ToPatch() (domain.FightPatch, error) {
	patch := domain.FightPatch{
		Fighter1: r.Fighter1,
		Fighter2: r.Fighter2,
		Winner:   r.Winner,
	}
	if r.Method != nil {
		m, err := domain.ParseMethod(*r.Method)
		if err != nil {
			return patch, err
		}
		patch.Method = &m
	}
	if r.Platform != nil {
		p, err := ParsePlatform(*r.Platform)
		if err != nil {
			return patch, err
		}
		patch.Platform = &p
	}
	if r.Date != nil {
		d, err := ParseDate(*r.Date)
		if err != nil {
			return patch, err
		}
		patch.Date = &d
	}
	return patch, nil
}

func (r *OverrideRecordRequest) Record() domain.Record {
	return domain.Record{Wins: r.Wins, Losses: r.Losses, Draws: r.Draws, KOWins: r.KOWins}
}
