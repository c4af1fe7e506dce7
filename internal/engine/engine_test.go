package engine

import (
	"fmt"
	"testing"
	"time"
	"ufl-rankings/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

func fighter(id, name string, p domain.Platform) domain.Fighter {
	return domain.Fighter{ID: id, Name: name, Platform: p}
}

func fight(id, f1, f2, winner string, m domain.Method, p domain.Platform, daysAgo int) domain.Fight {
	return domain.Fight{
		ID:       id,
		Fighter1: f1,
		Fighter2: f2,
		Winner:   winner,
		Method:   m,
		Platform: p,
		Date:     DateOnly(today).AddDate(0, 0, -daysAgo),
	}
}

func sampleSnapshot() *Snapshot {
	s := NewSnapshot(
		[]domain.Fighter{
			fighter("a", "Alice", domain.PlatformPC),
			fighter("b", "Bob", domain.PlatformPC),
			fighter("c", "Cara", domain.PlatformPC),
			fighter("a5", "Alice", domain.PlatformPS5),
		},
		[]domain.Fight{
			fight("f1", "Alice", "Bob", "Alice", domain.MethodKO, domain.PlatformPC, 1),
			fight("f2", "Bob", "Cara", "Draw", domain.MethodDraw, domain.PlatformPC, 3),
			fight("f3", "Cara", "Alice", "Cara", domain.MethodDecision, domain.PlatformPC, 30),
			fight("f4", "Bob", "Cara", "Bob", domain.MethodDecision, domain.PlatformPC, 2),
		},
		map[domain.Platform]string{domain.PlatformPS5: "Alice"},
	)
	s.RecomputeAll()
	return s
}

func TestRecordFor(t *testing.T) {
	s := sampleSnapshot()

	tests := []struct {
		name string
		want domain.Record
	}{
		{"Alice", domain.Record{Wins: 1, Losses: 1, KOWins: 1}},
		{"Bob", domain.Record{Wins: 1, Losses: 1, Draws: 1}},
		{"Cara", domain.Record{Wins: 1, Losses: 1, Draws: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecordFor(tt.name, domain.PlatformPC, s.Fights))
			f, ok := s.Fighter(tt.name, domain.PlatformPC)
			require.True(t, ok)
			assert.Equal(t, tt.want, f.Record)
		})
	}

	other, ok := s.Fighter("Alice", domain.PlatformPS5)
	require.True(t, ok)
	assert.Equal(t, domain.Record{}, other.Record, "platforms are independent pools")
}

func TestRecomputeAllIsIdempotent(t *testing.T) {
	s := sampleSnapshot()
	first := Recalculate(s.Fighters, s.Fights)
	second := Recalculate(first, s.Fights)
	assert.Equal(t, first, second)
}

func TestRecalculateDoesNotMutateInput(t *testing.T) {
	fighters := []domain.Fighter{fighter("a", "Alice", domain.PlatformPC)}
	fighters[0].Record = domain.Record{Wins: 9}
	_ = Recalculate(fighters, nil)
	assert.Equal(t, 9, fighters[0].Record.Wins)
}

func TestConservation(t *testing.T) {
	s := sampleSnapshot()
	for _, f := range s.Fighters {
		assert.Equal(t, len(s.FightsFor(f.Name, f.Platform)), f.Record.Total(), f.Name)
	}
}

func TestRenameRoundTrip(t *testing.T) {
	s := sampleSnapshot()
	s.Champions[domain.PlatformPC] = "Bob"
	orig := s.Clone()

	renamed, err := s.Rename("Bob", "Robert", domain.PlatformPC)
	require.NoError(t, err)
	assert.Equal(t, "Robert", renamed.Name)
	assert.True(t, renamed.Champion)
	assert.Equal(t, "Robert", s.Champions[domain.PlatformPC])
	for _, f := range s.Fights {
		assert.NotEqual(t, "Bob", f.Fighter1)
		assert.NotEqual(t, "Bob", f.Fighter2)
		assert.NotEqual(t, "Bob", f.Winner)
	}
	fourth, _ := s.Fight("f4")
	assert.Equal(t, "Robert", fourth.Winner)

	_, err = s.Rename("Robert", "Bob", domain.PlatformPC)
	require.NoError(t, err)
	assert.Equal(t, orig, s)
}

func TestRenameLeavesOtherPlatforms(t *testing.T) {
	s := sampleSnapshot()
	s.AppendFighter(fighter("b5", "Bob", domain.PlatformPS5))
	s.AppendFight(fight("p1", "Alice", "Bob", "Bob", domain.MethodKO, domain.PlatformPS5, 1))

	_, err := s.Rename("Alice", "Alicia", domain.PlatformPC)
	require.NoError(t, err)

	ps5, _ := s.Fight("p1")
	assert.Equal(t, "Alice", ps5.Fighter1)
	assert.Equal(t, "Alice", s.Champions[domain.PlatformPS5])
}

func TestRenameErrors(t *testing.T) {
	s := sampleSnapshot()

	_, err := s.Rename("Bob", "alice", domain.PlatformPC)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	_, err = s.Rename("Nobody", "Somebody", domain.PlatformPC)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = s.Rename("Bob", "  ", domain.PlatformPC)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f, err := s.Rename("bob", "BOB", domain.PlatformPC)
	require.NoError(t, err, "a case-only rename is not a collision")
	assert.Equal(t, "BOB", f.Name)
}

func TestDeleteCascades(t *testing.T) {
	s := sampleSnapshot()
	s.Champions[domain.PlatformPC] = "Cara"

	removed, gone, err := s.Delete("cara", domain.PlatformPC)
	require.NoError(t, err)
	assert.Equal(t, "c", removed.ID)
	assert.Len(t, gone, 3)
	assert.Len(t, s.Fights, 1)
	for _, f := range s.Fights {
		assert.False(t, f.Involves("Cara"))
	}
	_, ok := s.Champions[domain.PlatformPC]
	assert.False(t, ok)

	_, _, err = s.Delete("Cara", domain.PlatformPC)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestNormalizeFight(t *testing.T) {
	s := sampleSnapshot()
	base := domain.FightInput{
		Fighter1: "alice",
		Fighter2: " Bob",
		Winner:   "ALICE",
		Method:   domain.MethodKO,
		Platform: domain.PlatformPC,
		Date:     today,
	}

	got, err := s.NormalizeFight(base)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Fighter1)
	assert.Equal(t, "Bob", got.Fighter2)
	assert.Equal(t, "Alice", got.Winner)
	assert.Equal(t, DateOnly(today), got.Date)

	tests := []struct {
		name   string
		mutate func(*domain.FightInput)
		want   error
	}{
		{"self fight", func(in *domain.FightInput) { in.Fighter2 = "ALICE" }, domain.ErrSelfFight},
		{"unknown fighter", func(in *domain.FightInput) { in.Fighter2 = "Zed" }, domain.ErrInvalidReference},
		{"wrong platform", func(in *domain.FightInput) { in.Platform = domain.PlatformXBOX }, domain.ErrInvalidReference},
		{"winner not in fight", func(in *domain.FightInput) { in.Winner = "Cara" }, domain.ErrInvalidReference},
		{"draw method with winner", func(in *domain.FightInput) { in.Method = domain.MethodDraw }, domain.ErrInconsistentMethod},
		{"draw winner with KO", func(in *domain.FightInput) { in.Winner = "Draw" }, domain.ErrInconsistentMethod},
		{"missing date", func(in *domain.FightInput) { in.Date = time.Time{} }, domain.ErrInvalidInput},
		{"bad method", func(in *domain.FightInput) { in.Method = "Submission" }, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := s.NormalizeFight(in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDiff(t *testing.T) {
	prev := sampleSnapshot()
	next := prev.Clone()

	assert.True(t, Diff(prev, next).Empty())

	_, err := next.Rename("Bob", "Robert", domain.PlatformPC)
	require.NoError(t, err)
	next.RemoveFight("f3")
	next.AppendFight(fight("f5", "Alice", "Cara", "Alice", domain.MethodDecision, domain.PlatformPC, 0))
	next.SetChampion(domain.PlatformPS5, "")
	next.RecomputeAll()

	cs := Diff(prev, next)
	assert.Equal(t, []string{"f3"}, cs.DeleteFights)
	require.Len(t, cs.InsertFights, 1)
	assert.Equal(t, "f5", cs.InsertFights[0].ID)
	assert.Len(t, cs.UpdateFights, 3, "every fight naming Bob is rewritten")
	assert.Equal(t, map[domain.Platform]string{domain.PlatformPS5: ""}, cs.Champions)

	ids := make([]string, 0, len(cs.UpsertFighters))
	for _, f := range cs.UpsertFighters {
		ids = append(ids, f.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ids)
	assert.Empty(t, cs.DeleteFighters)

	now := today.Add(time.Hour)
	cs.Stamp(next, now)
	f, _ := next.Fighter("Robert", domain.PlatformPC)
	assert.Equal(t, now, f.UpdatedAt)
}

func TestSearch(t *testing.T) {
	s := sampleSnapshot()
	assert.Len(t, s.SearchFighters("", "ali"), 2)
	assert.Len(t, s.SearchFighters(domain.PlatformPC, "ALI"), 1)
	assert.Len(t, s.SearchFights(domain.PlatformPC, "draw"), 1)
	assert.Len(t, s.SearchFights("", ""), 4)
}

func names(lb Leaderboard) []string {
	out := make([]string, len(lb.Contenders))
	for i, c := range lb.Contenders {
		out[i] = c.Fighter.Name
	}
	return out
}

func TestRankScenario(t *testing.T) {
	s := NewSnapshot([]domain.Fighter{
		fighter("b", "Bob", domain.PlatformPC),
		fighter("a", "Alice", domain.PlatformPC),
	}, nil, nil)
	s.AppendFight(fight("f1", "Alice", "Bob", "Alice", domain.MethodKO, domain.PlatformPC, 0))
	s.RecomputeAll()

	lb := Rank(s, domain.PlatformPC, DefaultRankOptions(today))
	assert.Equal(t, []string{"Alice", "Bob"}, names(lb))
	assert.Equal(t, 5+2+2, lb.Contenders[0].Score)
	assert.Equal(t, 1, lb.Contenders[0].RecentWins)
	assert.Equal(t, -2, lb.Contenders[1].Score)
	assert.Equal(t, []int{1, 2}, []int{lb.Contenders[0].Position, lb.Contenders[1].Position})
	assert.Nil(t, lb.Champion)
}

func TestRankHeadToHeadOverridesScore(t *testing.T) {
	s := NewSnapshot([]domain.Fighter{
		fighter("b", "Bob", domain.PlatformPC),
		fighter("a", "Alice", domain.PlatformPC),
	}, []domain.Fight{
		fight("f1", "Alice", "Bob", "Alice", domain.MethodDecision, domain.PlatformPC, 100),
	}, nil)
	s.SetRecord("Alice", domain.PlatformPC, domain.Record{Wins: 2})
	s.SetRecord("Bob", domain.PlatformPC, domain.Record{Wins: 10})

	lb := Rank(s, domain.PlatformPC, DefaultRankOptions(today))
	require.Equal(t, []string{"Alice", "Bob"}, names(lb))
	assert.Equal(t, 10, lb.Contenders[0].Score)
	assert.Equal(t, 50, lb.Contenders[1].Score)
}

func TestRankRecencyBonus(t *testing.T) {
	s := NewSnapshot([]domain.Fighter{
		fighter("old", "Oldie", domain.PlatformPC),
		fighter("new", "Newbie", domain.PlatformPC),
		fighter("x", "Xavier", domain.PlatformPC),
		fighter("y", "Yusuf", domain.PlatformPC),
	}, []domain.Fight{
		fight("f1", "Oldie", "Xavier", "Oldie", domain.MethodDecision, domain.PlatformPC, 40),
		fight("f2", "Newbie", "Yusuf", "Newbie", domain.MethodDecision, domain.PlatformPC, 5),
	}, nil)
	s.RecomputeAll()

	lb := Rank(s, domain.PlatformPC, DefaultRankOptions(today))
	assert.Equal(t, "Newbie", lb.Contenders[0].Fighter.Name)
	assert.Equal(t, "Oldie", lb.Contenders[1].Fighter.Name)
}

func TestRankRecencyWindowIsInclusiveAndCumulative(t *testing.T) {
	s := NewSnapshot([]domain.Fighter{
		fighter("a", "Alice", domain.PlatformPC),
		fighter("b", "Bob", domain.PlatformPC),
	}, []domain.Fight{
		fight("f1", "Alice", "Bob", "Alice", domain.MethodDecision, domain.PlatformPC, 20),
		fight("f2", "Alice", "Bob", "Alice", domain.MethodDecision, domain.PlatformPC, 21),
		fight("f3", "Alice", "Bob", "Alice", domain.MethodDecision, domain.PlatformPC, 0),
	}, nil)
	s.RecomputeAll()

	lb := Rank(s, domain.PlatformPC, DefaultRankOptions(today))
	assert.Equal(t, 2, lb.Contenders[0].RecentWins)
	assert.Equal(t, 3*5+2*2, lb.Contenders[0].Score)
}

func TestRankExcludesChampionAndTruncates(t *testing.T) {
	var fighters []domain.Fighter
	for i := 0; i < 20; i++ {
		fighters = append(fighters, fighter(fmt.Sprint(i), fmt.Sprintf("F%02d", i), domain.PlatformXBOX))
	}
	s := NewSnapshot(fighters, nil, map[domain.Platform]string{domain.PlatformXBOX: "F03"})

	lb := Rank(s, domain.PlatformXBOX, DefaultRankOptions(today))
	require.NotNil(t, lb.Champion)
	assert.Equal(t, "F03", lb.Champion.Name)
	assert.Len(t, lb.Contenders, 15)
	assert.NotContains(t, names(lb), "F03")
	assert.Equal(t, "F00", lb.Contenders[0].Fighter.Name, "equal scores keep snapshot order")
}

func TestRankEmptyPlatform(t *testing.T) {
	lb := Rank(NewSnapshot(nil, nil, nil), domain.PlatformPS5, DefaultRankOptions(today))
	assert.NotNil(t, lb.Contenders)
	assert.Empty(t, lb.Contenders)
}
