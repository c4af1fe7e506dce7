package engine

import (
	"fmt"
	"slices"
	"strings"
	"ufl-rankings/internal/domain"
)

// Resolve maps a caller-supplied name to the display name of an existing fighter.
func (s *Snapshot) Resolve(name string, platform domain.Platform) (string, error) {
	i := s.fighterIndex(name, platform)
	if i < 0 {
		return "", fmt.Errorf("%w: no fighter %q on %s", domain.ErrInvalidReference, strings.TrimSpace(name), platform)
	}
	return s.Fighters[i].Name, nil
}

// checkNewIdentity validates a name for a fighter being created or renamed.
// self is the index of the fighter being renamed, or -1.
func (s *Snapshot) checkNewIdentity(name string, platform domain.Platform, self int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: fighter name is empty", domain.ErrInvalidInput)
	}
	if domain.IsDraw(name) {
		return "", fmt.Errorf("%w: %q is reserved", domain.ErrInvalidInput, domain.DrawWinner)
	}
	if !slices.Contains(domain.Platforms, platform) {
		return "", fmt.Errorf("%w: unknown platform %q", domain.ErrInvalidInput, platform)
	}
	if i := s.fighterIndex(name, platform); i >= 0 && i != self {
		return "", fmt.Errorf("%w: %s", domain.ErrDuplicateIdentity, domain.Identity{Name: name, Platform: platform})
	}
	return name, nil
}

// AddFighter validates and appends a zero-record fighter.
func (s *Snapshot) AddFighter(f domain.Fighter) (domain.Fighter, error) {
	name, err := s.checkNewIdentity(f.Name, f.Platform, -1)
	if err != nil {
		return domain.Fighter{}, err
	}
	f.Name = name
	f.Record = domain.Record{}
	f.Champion = false
	s.AppendFighter(f)
	return f, nil
}

// Rename moves a fighter to a new name and rewrites every fight and the
// champion registry entry that referenced the old one. Aggregates are kept.
func (s *Snapshot) Rename(oldName, newName string, platform domain.Platform) (domain.Fighter, error) {
	i := s.fighterIndex(oldName, platform)
	if i < 0 {
		return domain.Fighter{}, fmt.Errorf("%w: no fighter %q on %s", domain.ErrInvalidReference, strings.TrimSpace(oldName), platform)
	}
	name, err := s.checkNewIdentity(newName, platform, i)
	if err != nil {
		return domain.Fighter{}, err
	}

	oldKey := domain.NameKey(s.Fighters[i].Name)
	s.Fighters[i].Name = name

	for j, f := range s.Fights {
		if f.Platform != platform {
			continue
		}
		if domain.NameKey(f.Fighter1) == oldKey {
			s.Fights[j].Fighter1 = name
		}
		if domain.NameKey(f.Fighter2) == oldKey {
			s.Fights[j].Fighter2 = name
		}
		if domain.NameKey(f.Winner) == oldKey {
			s.Fights[j].Winner = name
		}
	}

	if champ, ok := s.Champions[platform]; ok && domain.NameKey(champ) == oldKey {
		s.Champions[platform] = name
	}

	return s.withChampion(s.Fighters[i]), nil
}

// Delete removes a fighter, every fight it took part in on its platform and its
// champion slot. It returns the removed fighter and fights.
func (s *Snapshot) Delete(name string, platform domain.Platform) (domain.Fighter, []domain.Fight, error) {
	i := s.fighterIndex(name, platform)
	if i < 0 {
		return domain.Fighter{}, nil, fmt.Errorf("%w: no fighter %q on %s", domain.ErrInvalidReference, strings.TrimSpace(name), platform)
	}
	removed := s.Fighters[i]
	s.Fighters = slices.Delete(s.Fighters, i, i+1)

	var gone []domain.Fight
	kept := s.Fights[:0:0]
	for _, f := range s.Fights {
		if f.Platform == platform && f.Involves(removed.Name) {
			gone = append(gone, f)
			continue
		}
		kept = append(kept, f)
	}
	s.Fights = kept

	if champ, ok := s.Champions[platform]; ok && domain.NameKey(champ) == domain.NameKey(removed.Name) {
		delete(s.Champions, platform)
	}
	return removed, gone, nil
}

// NormalizeFight validates a fight against the snapshot and rewrites its names
// to the display names of the referenced fighters.
func (s *Snapshot) NormalizeFight(in domain.FightInput) (domain.FightInput, error) {
	if !slices.Contains(domain.Platforms, in.Platform) {
		return in, fmt.Errorf("%w: unknown platform %q", domain.ErrInvalidInput, in.Platform)
	}
	switch in.Method {
	case domain.MethodKO, domain.MethodDecision, domain.MethodDraw:
	default:
		return in, fmt.Errorf("%w: unknown method %q", domain.ErrInvalidInput, in.Method)
	}
	if strings.TrimSpace(in.Fighter1) == "" || strings.TrimSpace(in.Fighter2) == "" || strings.TrimSpace(in.Winner) == "" {
		return in, fmt.Errorf("%w: fighters and winner are required", domain.ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return in, fmt.Errorf("%w: fight date is required", domain.ErrInvalidInput)
	}
	if domain.NameKey(in.Fighter1) == domain.NameKey(in.Fighter2) {
		return in, fmt.Errorf("%w: %q cannot fight themselves", domain.ErrSelfFight, strings.TrimSpace(in.Fighter1))
	}

	f1, err := s.Resolve(in.Fighter1, in.Platform)
	if err != nil {
		return in, err
	}
	f2, err := s.Resolve(in.Fighter2, in.Platform)
	if err != nil {
		return in, err
	}

	winner := domain.DrawWinner
	switch domain.NameKey(in.Winner) {
	case domain.NameKey(domain.DrawWinner):
	case domain.NameKey(f1):
		winner = f1
	case domain.NameKey(f2):
		winner = f2
	default:
		return in, fmt.Errorf("%w: winner %q is not in the fight", domain.ErrInvalidReference, strings.TrimSpace(in.Winner))
	}

	if (in.Method == domain.MethodDraw) != (winner == domain.DrawWinner) {
		return in, fmt.Errorf("%w: method %s with winner %q", domain.ErrInconsistentMethod, in.Method, winner)
	}

	in.Fighter1 = f1
	in.Fighter2 = f2
	in.Winner = winner
	in.Date = DateOnly(in.Date)
	return in, nil
}
