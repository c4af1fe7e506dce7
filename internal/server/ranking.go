package server

import (
	"context"
	"net/http"
	"ufl-rankings/internal/config"
	"ufl-rankings/internal/rpc"
	"ufl-rankings/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/emptypb"
)

type RankingServer struct {
	svc    *service.RankingService
	secret string
	logger zerolog.Logger
}

func NewRankingServer(svc *service.RankingService, cfg *config.Config, logger zerolog.Logger) *RankingServer {
	return &RankingServer{svc: svc, secret: cfg.AdminSecret, logger: logger}
}

// Handler returns the path prefix and handler serving every procedure of the
// ranking service.
func (s *RankingServer) Handler() (string, http.Handler) {
	opts := []connect.HandlerOption{
		connect.WithCodec(rpc.Codec{}),
		connect.WithInterceptors(NewLoggingInterceptor(s.logger), NewAdminInterceptor(s.secret)),
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.AddFighterProcedure, connect.NewUnaryHandler(rpc.AddFighterProcedure, s.AddFighter, opts...))
	mux.Handle(rpc.RenameFighterProcedure, connect.NewUnaryHandler(rpc.RenameFighterProcedure, s.RenameFighter, opts...))
	mux.Handle(rpc.DeleteFighterProcedure, connect.NewUnaryHandler(rpc.DeleteFighterProcedure, s.DeleteFighter, opts...))
	mux.Handle(rpc.OverrideRecordProcedure, connect.NewUnaryHandler(rpc.OverrideRecordProcedure, s.OverrideRecord, opts...))
	mux.Handle(rpc.AddFightProcedure, connect.NewUnaryHandler(rpc.AddFightProcedure, s.AddFight, opts...))
	mux.Handle(rpc.EditFightProcedure, connect.NewUnaryHandler(rpc.EditFightProcedure, s.EditFight, opts...))
	mux.Handle(rpc.DeleteFightProcedure, connect.NewUnaryHandler(rpc.DeleteFightProcedure, s.DeleteFight, opts...))
	mux.Handle(rpc.SetChampionProcedure, connect.NewUnaryHandler(rpc.SetChampionProcedure, s.SetChampion, opts...))
	mux.Handle(rpc.RecomputeAllProcedure, connect.NewUnaryHandler(rpc.RecomputeAllProcedure, s.RecomputeAll, opts...))
	mux.Handle(rpc.GetRankingProcedure, connect.NewUnaryHandler(rpc.GetRankingProcedure, s.GetRanking, opts...))
	mux.Handle(rpc.ListFightersProcedure, connect.NewUnaryHandler(rpc.ListFightersProcedure, s.ListFighters, opts...))
	mux.Handle(rpc.ListFightsProcedure, connect.NewUnaryHandler(rpc.ListFightsProcedure, s.ListFights, opts...))
	mux.Handle(rpc.GetFighterProcedure, connect.NewUnaryHandler(rpc.GetFighterProcedure, s.GetFighter, opts...))
	return rpc.ServicePath, mux
}

func mutationResponse(res *service.Result, err error) (*connect.Response[rpc.MutationResponse], error) {
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return connect.NewResponse(&rpc.MutationResponse{
		Fighters: rpc.FromFighters(res.Fighters),
		Fights:   rpc.FromFights(res.Fights),
	}), nil
}

func (s *RankingServer) AddFighter(ctx context.Context, req *connect.Request[rpc.AddFighterRequest]) (*connect.Response[rpc.MutationResponse], error) {
	platform, err := rpc.ParsePlatform(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return mutationResponse(s.svc.AddFighter(ctx, req.Msg.Name, platform))
}

func (s *RankingServer) RenameFighter(ctx context.Context, req *connect.Request[rpc.RenameFighterRequest]) (*connect.Response[rpc.MutationResponse], error) {
	platform, err := rpc.ParsePlatform(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return mutationResponse(s.svc.RenameFighter(ctx, req.Msg.OldName, req.Msg.NewName, platform))
}

func (s *RankingServer) DeleteFighter(ctx context.Context, req *connect.Request[rpc.DeleteFighterRequest]) (*connect.Response[rpc.MutationResponse], error) {
	platform, err := rpc.ParsePlatform(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return mutationResponse(s.svc.DeleteFighter(ctx, req.Msg.Name, platform))
}

func (s *RankingServer) OverrideRecord(ctx context.Context, req *connect.Request[rpc.OverrideRecordRequest]) (*connect.Response[rpc.MutationResponse], error) {
	platform, err := rpc.ParsePlatform(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return mutationResponse(s.svc.OverrideRecord(ctx, req.Msg.Name, platform, req.Msg.Record()))
}

func (s *RankingServer) AddFight(ctx context.Context, req *connect.Request[rpc.AddFightRequest]) (*connect.Response[rpc.MutationResponse], error) {
	in, err := req.Msg.ToInput()
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return mutationResponse(s.svc.AddFight(ctx, in))
}

func (s *RankingServer) EditFight(ctx context.Context, req *connect.Request[rpc.EditFightRequest]) (*connect.Response[rpc.MutationResponse], error) {
	patch, err := req.Msg.ToPatch()
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return mutationResponse(s.svc.EditFight(ctx, req.Msg.ID, patch))
}

func (s *RankingServer) DeleteFight(ctx context.Context, req *connect.Request[rpc.DeleteFightRequest]) (*connect.Response[rpc.MutationResponse], error) {
	return mutationResponse(s.svc.DeleteFight(ctx, req.Msg.ID))
}

func (s *RankingServer) SetChampion(ctx context.Context, req *connect.Request[rpc.SetChampionRequest]) (*connect.Response[rpc.MutationResponse], error) {
	platform, err := rpc.ParsePlatform(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return mutationResponse(s.svc.SetChampion(ctx, platform, req.Msg.Name))
}

func (s *RankingServer) RecomputeAll(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[rpc.MutationResponse], error) {
	return mutationResponse(s.svc.RecomputeAll(ctx))
}

func (s *RankingServer) GetRanking(ctx context.Context, req *connect.Request[rpc.GetRankingRequest]) (*connect.Response[rpc.GetRankingResponse], error) {
	platform, err := rpc.ParsePlatform(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	lb, err := s.svc.GetRanking(ctx, platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	resp := rpc.FromLeaderboard(lb)
	resp.Degraded = s.svc.Degraded()
	return connect.NewResponse(resp), nil
}

func (s *RankingServer) ListFighters(ctx context.Context, req *connect.Request[rpc.ListFightersRequest]) (*connect.Response[rpc.ListFightersResponse], error) {
	platform, err := rpc.ParsePlatformFilter(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	fighters, err := s.svc.ListFighters(ctx, platform, req.Msg.Query)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return connect.NewResponse(&rpc.ListFightersResponse{
		Fighters: rpc.FromFighters(fighters),
		Degraded: s.svc.Degraded(),
	}), nil
}

func (s *RankingServer) ListFights(ctx context.Context, req *connect.Request[rpc.ListFightsRequest]) (*connect.Response[rpc.ListFightsResponse], error) {
	platform, err := rpc.ParsePlatformFilter(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	fights, err := s.svc.ListFights(ctx, platform, req.Msg.Query)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return connect.NewResponse(&rpc.ListFightsResponse{
		Fights:   rpc.FromFights(fights),
		Degraded: s.svc.Degraded(),
	}), nil
}

func (s *RankingServer) GetFighter(ctx context.Context, req *connect.Request[rpc.GetFighterRequest]) (*connect.Response[rpc.GetFighterResponse], error) {
	platform, err := rpc.ParsePlatform(req.Msg.Platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	f, fights, err := s.svc.GetFighter(ctx, req.Msg.Name, platform)
	if err != nil {
		return nil, rpc.ToConnectError(err)
	}
	return connect.NewResponse(&rpc.GetFighterResponse{
		Fighter:  rpc.FromFighter(f),
		Fights:   rpc.FromFights(fights),
		Degraded: s.svc.Degraded(),
	}), nil
}
