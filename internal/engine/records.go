package engine

import (
	"ufl-rankings/internal/domain"
)

// RecordFor folds the fight log into the aggregates of one fighter.
func RecordFor(name string, platform domain.Platform, fights []domain.Fight) domain.Record {
	var r domain.Record
	k := domain.NameKey(name)
	for _, f := range fights {
		if f.Platform != platform || !f.Involves(name) {
			continue
		}
		tally(&r, k, f)
	}
	return r
}

func tally(r *domain.Record, key string, f domain.Fight) {
	switch {
	case domain.NameKey(f.Winner) == key:
		r.Wins++
		if f.Method == domain.MethodKO {
			r.KOWins++
		}
	case domain.IsDraw(f.Winner):
		r.Draws++
	default:
		r.Losses++
	}
}

// Recalculate returns a copy of fighters with every record re-derived from the
// fight log. It does not modify its arguments.
func Recalculate(fighters []domain.Fighter, fights []domain.Fight) []domain.Fighter {
	records := make(map[domain.IdentityKey]*domain.Record, len(fighters))
	out := make([]domain.Fighter, len(fighters))
	for i, f := range fighters {
		out[i] = f
		out[i].Record = domain.Record{}
		records[f.Identity().Key()] = &out[i].Record
	}

	for _, f := range fights {
		for _, name := range [2]string{f.Fighter1, f.Fighter2} {
			key := domain.IdentityKey{Name: domain.NameKey(name), Platform: f.Platform}
			if r, ok := records[key]; ok {
				tally(r, key.Name, f)
			}
		}
	}
	return out
}

// Recompute re-derives the records of the given fighters in place. Keys that
// no longer resolve are skipped.
func (s *Snapshot) Recompute(keys ...domain.IdentityKey) {
	want := make(map[domain.IdentityKey]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	for i, f := range s.Fighters {
		if _, ok := want[f.Identity().Key()]; ok {
			s.Fighters[i].Record = RecordFor(f.Name, f.Platform, s.Fights)
		}
	}
}

func (s *Snapshot) RecomputeAll() {
	s.Fighters = Recalculate(s.Fighters, s.Fights)
}

// Participants returns the identity keys of everyone named in the fights.
func Participants(fights ...domain.Fight) []domain.IdentityKey {
	var keys []domain.IdentityKey
	for _, f := range fights {
		keys = append(keys,
			domain.IdentityKey{Name: domain.NameKey(f.Fighter1), Platform: f.Platform},
			domain.IdentityKey{Name: domain.NameKey(f.Fighter2), Platform: f.Platform},
		)
	}
	return keys
}
