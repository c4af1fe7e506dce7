package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
	"ufl-rankings/internal/config"
	"ufl-rankings/internal/database"
	"ufl-rankings/internal/db"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/repository"
	"ufl-rankings/internal/rpc"
	"ufl-rankings/internal/server"
	"ufl-rankings/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "letmein"

func newTestURL(t *testing.T) string {
	t.Helper()
	logger := zerolog.Nop()
	sqlDB, err := database.Open(filepath.Join(t.TempDir(), "rankings.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	store := repository.NewStore(sqlDB,
		repository.NewFighterRepository(sqlDB, queries, logger),
		repository.NewFightRepository(sqlDB, queries, logger),
		repository.NewChampionRepository(sqlDB, queries, logger),
		logger,
	)
	cfg := &config.Config{AdminSecret: testSecret, CacheTTL: time.Minute, RecencyWindowDays: 20}
	path, handler := server.NewRankingServer(service.NewRankingService(store, cfg, logger), cfg, logger).Handler()

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestClientOverFasthttp(t *testing.T) {
	ctx := context.Background()
	c := NewClient(newTestURL(t)+"/", testSecret)

	_, err := c.AddFighter(ctx, "Alice", "PS5")
	require.NoError(t, err)
	_, err = c.AddFighter(ctx, "Bob", "PS5")
	require.NoError(t, err)

	res, err := c.AddFight(ctx, &rpc.AddFightRequest{
		Fighter1: "Alice", Fighter2: "Bob", Winner: "Draw", Method: "Draw",
		Platform: "PS5", Date: "2026-01-10",
	})
	require.NoError(t, err)
	require.Len(t, res.Fights, 1)
	fightID := res.Fights[0].ID

	bob := "Bob"
	decision := "Decision"
	res, err = c.EditFight(ctx, &rpc.EditFightRequest{ID: fightID, Winner: &bob, Method: &decision})
	require.NoError(t, err)
	assert.Equal(t, "Bob", res.Fights[0].Winner)

	_, err = c.RenameFighter(ctx, "PS5", "Bob", "Bobby")
	require.NoError(t, err)

	profile, err := c.GetFighter(ctx, "PS5", "bobby")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Fighter.Wins)
	require.Len(t, profile.Fights, 1)
	assert.Equal(t, "Bobby", profile.Fights[0].Fighter2)

	_, err = c.OverrideRecord(ctx, &rpc.OverrideRecordRequest{Platform: "PS5", Name: "Alice", Wins: 4})
	require.NoError(t, err)
	_, err = c.SetChampion(ctx, "PS5", "Alice")
	require.NoError(t, err)

	ranking, err := c.GetRanking(ctx, "PS5")
	require.NoError(t, err)
	require.NotNil(t, ranking.Champion)
	assert.Equal(t, 4, ranking.Champion.Wins)
	require.Len(t, ranking.Contenders, 1)

	_, err = c.RecomputeAll(ctx)
	require.NoError(t, err)
	fighters, err := c.ListFighters(ctx, "PS5", "ali")
	require.NoError(t, err)
	require.Len(t, fighters.Fighters, 1)
	assert.Equal(t, 1, fighters.Fighters[0].Losses)
	assert.Zero(t, fighters.Fighters[0].Wins)

	_, err = c.DeleteFighter(ctx, "PS5", "Bobby")
	require.NoError(t, err)
	fights, err := c.ListFights(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, fights.Fights)

	_, err = c.DeleteFight(ctx, fightID)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	url := newTestURL(t)

	_, err := NewClient(url, "").AddFighter(ctx, "Alice", "PC")
	assert.ErrorIs(t, err, rpc.ErrUnauthenticated)

	c := NewClient(url, testSecret)
	_, err = c.AddFighter(ctx, "Draw", "PC")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.AddFighter(ctx, "Alice", "PC")
	require.NoError(t, err)
	_, err = c.AddFighter(ctx, "ALICE", "PC")
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	_, err = c.SetChampion(ctx, "PC", "Nobody")
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = c.AddFight(ctx, &rpc.AddFightRequest{
		Fighter1: "Alice", Fighter2: "alice", Winner: "Alice", Method: "KO", Platform: "PC", Date: "2026-01-10",
	})
	assert.ErrorIs(t, err, domain.ErrSelfFight)
}
