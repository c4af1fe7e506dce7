package server

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
	"ufl-rankings/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"
)

const testSecret = "s3cret"

func newTestServer(t *testing.T) *httptest.Server {
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
	cfg := &config.Config{AdminSecret: testSecret, CacheTTL: time.Minute, FallbackCache: true, RecencyWindowDays: 20}
	svc := service.NewRankingService(store, cfg, logger)

	path, handler := NewRankingServer(svc, cfg, logger).Handler()
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func call[Req, Res any](t *testing.T, srv *httptest.Server, procedure, secret string, msg *Req) (*Res, error) {
	t.Helper()
	client := connect.NewClient[Req, Res](srv.Client(), srv.URL+procedure, connect.WithCodec(rpc.Codec{}))
	req := connect.NewRequest(msg)
	if secret != "" {
		req.Header().Set("Authorization", "Bearer "+secret)
	}
	res, err := client.CallUnary(context.Background(), req)
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func TestAdminProceduresRequireSecret(t *testing.T) {
	srv := newTestServer(t)

	_, err := call[rpc.AddFighterRequest, rpc.MutationResponse](t, srv, rpc.AddFighterProcedure, "", &rpc.AddFighterRequest{Name: "Alice", Platform: "PC"})
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = call[rpc.AddFighterRequest, rpc.MutationResponse](t, srv, rpc.AddFighterProcedure, "wrong", &rpc.AddFighterRequest{Name: "Alice", Platform: "PC"})
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = call[emptypb.Empty, rpc.MutationResponse](t, srv, rpc.RecomputeAllProcedure, "", &emptypb.Empty{})
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	ranking, err := call[rpc.GetRankingRequest, rpc.GetRankingResponse](t, srv, rpc.GetRankingProcedure, "", &rpc.GetRankingRequest{Platform: "PC"})
	require.NoError(t, err, "reads are public")
	assert.Empty(t, ranking.Contenders)
}

func TestFightLifecycleOverRPC(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"Alice", "Bob"} {
		res, err := call[rpc.AddFighterRequest, rpc.MutationResponse](t, srv, rpc.AddFighterProcedure, testSecret, &rpc.AddFighterRequest{Name: name, Platform: "UFL PC"})
		require.NoError(t, err)
		require.Len(t, res.Fighters, 1)
		assert.NotEmpty(t, res.Fighters[0].ID)
	}

	added, err := call[rpc.AddFightRequest, rpc.MutationResponse](t, srv, rpc.AddFightProcedure, testSecret, &rpc.AddFightRequest{
		Fighter1: "alice", Fighter2: "Bob", Winner: "ALICE", Method: "KO", Platform: "PC",
		Date: time.Now().UTC().Format(domain.DateLayout),
	})
	require.NoError(t, err)
	require.Len(t, added.Fights, 1)
	assert.Equal(t, "Alice", added.Fights[0].Winner, "names are canonicalized")
	require.Len(t, added.Fighters, 2)
	assert.Equal(t, 1, added.Fighters[0].KOWins)

	ranking, err := call[rpc.GetRankingRequest, rpc.GetRankingResponse](t, srv, rpc.GetRankingProcedure, "", &rpc.GetRankingRequest{Platform: "PC"})
	require.NoError(t, err)
	require.Len(t, ranking.Contenders, 2)
	assert.Equal(t, "Alice", ranking.Contenders[0].Fighter.Name)
	assert.Equal(t, 1, ranking.Contenders[0].Position)
	assert.Equal(t, 9, ranking.Contenders[0].Score)
	assert.Equal(t, -2, ranking.Contenders[1].Score)

	_, err = call[rpc.SetChampionRequest, rpc.MutationResponse](t, srv, rpc.SetChampionProcedure, testSecret, &rpc.SetChampionRequest{Platform: "PC", Name: "Alice"})
	require.NoError(t, err)
	ranking, err = call[rpc.GetRankingRequest, rpc.GetRankingResponse](t, srv, rpc.GetRankingProcedure, "", &rpc.GetRankingRequest{Platform: "PC"})
	require.NoError(t, err)
	require.NotNil(t, ranking.Champion)
	assert.Equal(t, "Alice", ranking.Champion.Name)
	require.Len(t, ranking.Contenders, 1)

	profile, err := call[rpc.GetFighterRequest, rpc.GetFighterResponse](t, srv, rpc.GetFighterProcedure, "", &rpc.GetFighterRequest{Platform: "PC", Name: "bob"})
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Fighter.Losses)
	assert.Len(t, profile.Fights, 1)

	_, err = call[rpc.DeleteFightRequest, rpc.MutationResponse](t, srv, rpc.DeleteFightProcedure, testSecret, &rpc.DeleteFightRequest{ID: added.Fights[0].ID})
	require.NoError(t, err)

	fighters, err := call[rpc.ListFightersRequest, rpc.ListFightersResponse](t, srv, rpc.ListFightersProcedure, "", &rpc.ListFightersRequest{})
	require.NoError(t, err)
	require.Len(t, fighters.Fighters, 2)
	for _, f := range fighters.Fighters {
		assert.Zero(t, f.Wins+f.Losses+f.Draws+f.KOWins)
	}

	recomputed, err := call[emptypb.Empty, rpc.MutationResponse](t, srv, rpc.RecomputeAllProcedure, testSecret, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Len(t, recomputed.Fighters, 2)
}

func TestErrorCodesOverRPC(t *testing.T) {
	srv := newTestServer(t)
	_, err := call[rpc.AddFighterRequest, rpc.MutationResponse](t, srv, rpc.AddFighterProcedure, testSecret, &rpc.AddFighterRequest{Name: "Alice", Platform: "PC"})
	require.NoError(t, err)

	_, err = call[rpc.AddFighterRequest, rpc.MutationResponse](t, srv, rpc.AddFighterProcedure, testSecret, &rpc.AddFighterRequest{Name: "alice", Platform: "PC"})
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))
	assert.ErrorIs(t, rpc.FromConnectError(err), domain.ErrDuplicateIdentity)

	_, err = call[rpc.AddFightRequest, rpc.MutationResponse](t, srv, rpc.AddFightProcedure, testSecret, &rpc.AddFightRequest{
		Fighter1: "Alice", Fighter2: "Alice", Winner: "Alice", Method: "KO", Platform: "PC", Date: "2026-01-01",
	})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.ErrorIs(t, rpc.FromConnectError(err), domain.ErrSelfFight)

	_, err = call[rpc.AddFightRequest, rpc.MutationResponse](t, srv, rpc.AddFightProcedure, testSecret, &rpc.AddFightRequest{
		Fighter1: "Alice", Fighter2: "Ghost", Winner: "Alice", Method: "KO", Platform: "PC", Date: "2026-01-01",
	})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = call[rpc.GetRankingRequest, rpc.GetRankingResponse](t, srv, rpc.GetRankingProcedure, "", &rpc.GetRankingRequest{Platform: "Switch"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.ErrorIs(t, rpc.FromConnectError(err), domain.ErrInvalidInput)
}
