package engine

import (
	"time"
	"ufl-rankings/internal/domain"
)

// ChangeSet is the set of store writes that turns one snapshot into another.
type ChangeSet struct {
	UpsertFighters []domain.Fighter
	DeleteFighters []string
	InsertFights   []domain.Fight
	UpdateFights   []domain.Fight
	DeleteFights   []string
	// Champions holds changed registry slots; an empty name clears the slot.
	Champions map[domain.Platform]string
}

func (c ChangeSet) Empty() bool {
	return len(c.UpsertFighters) == 0 &&
		len(c.DeleteFighters) == 0 &&
		len(c.InsertFights) == 0 &&
		len(c.UpdateFights) == 0 &&
		len(c.DeleteFights) == 0 &&
		len(c.Champions) == 0
}

// Diff compares two snapshots by surrogate id. Timestamps and the derived
// champion flag are not compared.
func Diff(prev, next *Snapshot) ChangeSet {
	var cs ChangeSet

	before := make(map[string]domain.Fighter, len(prev.Fighters))
	for _, f := range prev.Fighters {
		before[f.ID] = f
	}
	for _, f := range next.Fighters {
		old, ok := before[f.ID]
		if !ok || old.Name != f.Name || old.Platform != f.Platform || old.Record != f.Record {
			cs.UpsertFighters = append(cs.UpsertFighters, f)
		}
		delete(before, f.ID)
	}
	for _, f := range prev.Fighters {
		if _, ok := before[f.ID]; ok {
			cs.DeleteFighters = append(cs.DeleteFighters, f.ID)
		}
	}

	fights := make(map[string]domain.Fight, len(prev.Fights))
	for _, f := range prev.Fights {
		fights[f.ID] = f
	}
	for _, f := range next.Fights {
		old, ok := fights[f.ID]
		switch {
		case !ok:
			cs.InsertFights = append(cs.InsertFights, f)
		case !sameFight(old, f):
			cs.UpdateFights = append(cs.UpdateFights, f)
		}
		delete(fights, f.ID)
	}
	for _, f := range prev.Fights {
		if _, ok := fights[f.ID]; ok {
			cs.DeleteFights = append(cs.DeleteFights, f.ID)
		}
	}

	for _, p := range domain.Platforms {
		if prev.Champions[p] != next.Champions[p] {
			if cs.Champions == nil {
				cs.Champions = make(map[domain.Platform]string)
			}
			cs.Champions[p] = next.Champions[p]
		}
	}
	return cs
}

func sameFight(a, b domain.Fight) bool {
	return a.Fighter1 == b.Fighter1 &&
		a.Fighter2 == b.Fighter2 &&
		a.Winner == b.Winner &&
		a.Method == b.Method &&
		a.Platform == b.Platform &&
		a.Date.Equal(b.Date)
}

// Stamp sets UpdatedAt on every written row, in the change set and in s.
func (c *ChangeSet) Stamp(s *Snapshot, now time.Time) {
	touched := make(map[string]struct{})
	for i := range c.UpsertFighters {
		c.UpsertFighters[i].UpdatedAt = now
		touched[c.UpsertFighters[i].ID] = struct{}{}
	}
	for i := range c.InsertFights {
		c.InsertFights[i].UpdatedAt = now
		touched[c.InsertFights[i].ID] = struct{}{}
	}
	for i := range c.UpdateFights {
		c.UpdateFights[i].UpdatedAt = now
		touched[c.UpdateFights[i].ID] = struct{}{}
	}
	for i, f := range s.Fighters {
		if _, ok := touched[f.ID]; ok {
			s.Fighters[i].UpdatedAt = now
		}
	}
	for i, f := range s.Fights {
		if _, ok := touched[f.ID]; ok {
			s.Fights[i].UpdatedAt = now
		}
	}
}
