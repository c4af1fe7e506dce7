// Package engine holds the record-consistency and ranking logic. It works on an
// in-memory Snapshot of the fighter set, fight log and champion registry and
// never talks to storage.
package engine

import (
	"slices"
	"strings"
	"ufl-rankings/internal/domain"
)

type Snapshot struct {
	Fighters  []domain.Fighter
	Fights    []domain.Fight
	Champions map[domain.Platform]string
}

func NewSnapshot(fighters []domain.Fighter, fights []domain.Fight, champions map[domain.Platform]string) *Snapshot {
	s := &Snapshot{
		Fighters:  fighters,
		Fights:    fights,
		Champions: make(map[domain.Platform]string, len(champions)),
	}
	for p, name := range champions {
		if strings.TrimSpace(name) != "" {
			s.Champions[p] = name
		}
	}
	return s
}

// Clone returns a deep copy that can be mutated without affecting s.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Fighters:  slices.Clone(s.Fighters),
		Fights:    slices.Clone(s.Fights),
		Champions: make(map[domain.Platform]string, len(s.Champions)),
	}
	for p, name := range s.Champions {
		c.Champions[p] = name
	}
	return c
}

func (s *Snapshot) fighterIndex(name string, platform domain.Platform) int {
	k := domain.NameKey(name)
	for i, f := range s.Fighters {
		if f.Platform == platform && domain.NameKey(f.Name) == k {
			return i
		}
	}
	return -1
}

func (s *Snapshot) fightIndex(id string) int {
	for i, f := range s.Fights {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// Fighter returns the fighter with the given identity, with its champion flag set.
func (s *Snapshot) Fighter(name string, platform domain.Platform) (domain.Fighter, bool) {
	i := s.fighterIndex(name, platform)
	if i < 0 {
		return domain.Fighter{}, false
	}
	return s.withChampion(s.Fighters[i]), true
}

func (s *Snapshot) Fight(id string) (domain.Fight, bool) {
	i := s.fightIndex(id)
	if i < 0 {
		return domain.Fight{}, false
	}
	return s.Fights[i], true
}

// Champion returns the reigning champion of a platform, if the registry entry
// resolves to a fighter.
func (s *Snapshot) Champion(platform domain.Platform) (domain.Fighter, bool) {
	name, ok := s.Champions[platform]
	if !ok {
		return domain.Fighter{}, false
	}
	return s.Fighter(name, platform)
}

func (s *Snapshot) isChampion(f domain.Fighter) bool {
	name, ok := s.Champions[f.Platform]
	return ok && domain.NameKey(name) == domain.NameKey(f.Name)
}

func (s *Snapshot) withChampion(f domain.Fighter) domain.Fighter {
	f.Champion = s.isChampion(f)
	return f
}

// FightersOf returns the fighters of a platform in snapshot order. An empty
// platform selects every fighter.
func (s *Snapshot) FightersOf(platform domain.Platform) []domain.Fighter {
	out := make([]domain.Fighter, 0, len(s.Fighters))
	for _, f := range s.Fighters {
		if platform == "" || f.Platform == platform {
			out = append(out, s.withChampion(f))
		}
	}
	return out
}

// FightsOf returns the fights of a platform in snapshot order. An empty
// platform selects every fight.
func (s *Snapshot) FightsOf(platform domain.Platform) []domain.Fight {
	out := make([]domain.Fight, 0, len(s.Fights))
	for _, f := range s.Fights {
		if platform == "" || f.Platform == platform {
			out = append(out, f)
		}
	}
	return out
}

// FightsFor returns every fight the fighter took part in.
func (s *Snapshot) FightsFor(name string, platform domain.Platform) []domain.Fight {
	var out []domain.Fight
	for _, f := range s.Fights {
		if f.Platform == platform && f.Involves(name) {
			out = append(out, f)
		}
	}
	return out
}

// SearchFighters filters by a case-insensitive substring of the name.
func (s *Snapshot) SearchFighters(platform domain.Platform, query string) []domain.Fighter {
	q := domain.NameKey(query)
	all := s.FightersOf(platform)
	if q == "" {
		return all
	}
	out := all[:0]
	for _, f := range all {
		if strings.Contains(domain.NameKey(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

// SearchFights filters by a case-insensitive substring of either fighter or the winner.
func (s *Snapshot) SearchFights(platform domain.Platform, query string) []domain.Fight {
	q := domain.NameKey(query)
	all := s.FightsOf(platform)
	if q == "" {
		return all
	}
	out := all[:0]
	for _, f := range all {
		if strings.Contains(domain.NameKey(f.Fighter1), q) ||
			strings.Contains(domain.NameKey(f.Fighter2), q) ||
			strings.Contains(domain.NameKey(f.Winner), q) {
			out = append(out, f)
		}
	}
	return out
}

func (s *Snapshot) AppendFight(f domain.Fight) {
	s.Fights = append(s.Fights, f)
}

// ReplaceFight swaps the fight with f.ID for f and returns the previous value.
func (s *Snapshot) ReplaceFight(f domain.Fight) (domain.Fight, bool) {
	i := s.fightIndex(f.ID)
	if i < 0 {
		return domain.Fight{}, false
	}
	prev := s.Fights[i]
	s.Fights[i] = f
	return prev, true
}

func (s *Snapshot) RemoveFight(id string) (domain.Fight, bool) {
	i := s.fightIndex(id)
	if i < 0 {
		return domain.Fight{}, false
	}
	prev := s.Fights[i]
	s.Fights = slices.Delete(s.Fights, i, i+1)
	return prev, true
}

func (s *Snapshot) AppendFighter(f domain.Fighter) {
	s.Fighters = append(s.Fighters, f)
}

// SetRecord overwrites the stored aggregates of a fighter.
func (s *Snapshot) SetRecord(name string, platform domain.Platform, r domain.Record) bool {
	i := s.fighterIndex(name, platform)
	if i < 0 {
		return false
	}
	s.Fighters[i].Record = r
	return true
}

// SetChampion assigns the registry slot of a platform. An empty name clears it.
func (s *Snapshot) SetChampion(platform domain.Platform, name string) {
	if strings.TrimSpace(name) == "" {
		delete(s.Champions, platform)
		return
	}
	s.Champions[platform] = name
}
