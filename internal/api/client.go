// Package api is the typed client of the ranking service used by rankctl.
package api

import (
	"context"
	"strings"
	"ufl-rankings/internal/rpc"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"
)

type Client struct {
	secret string

	addFighter     *connect.Client[rpc.AddFighterRequest, rpc.MutationResponse]
	renameFighter  *connect.Client[rpc.RenameFighterRequest, rpc.MutationResponse]
	deleteFighter  *connect.Client[rpc.DeleteFighterRequest, rpc.MutationResponse]
	overrideRecord *connect.Client[rpc.OverrideRecordRequest, rpc.MutationResponse]
	addFight       *connect.Client[rpc.AddFightRequest, rpc.MutationResponse]
	editFight      *connect.Client[rpc.EditFightRequest, rpc.MutationResponse]
	deleteFight    *connect.Client[rpc.DeleteFightRequest, rpc.MutationResponse]
	setChampion    *connect.Client[rpc.SetChampionRequest, rpc.MutationResponse]
	recomputeAll   *connect.Client[emptypb.Empty, rpc.MutationResponse]

	getRanking   *connect.Client[rpc.GetRankingRequest, rpc.GetRankingResponse]
	listFighters *connect.Client[rpc.ListFightersRequest, rpc.ListFightersResponse]
	listFights   *connect.Client[rpc.ListFightsRequest, rpc.ListFightsResponse]
	getFighter   *connect.Client[rpc.GetFighterRequest, rpc.GetFighterResponse]
}

// NewClient talks to the server at baseURL over fasthttp. secret may be empty
// for read-only use.
func NewClient(baseURL, secret string) *Client {
	return newClient(newFasthttpDoer(), baseURL, secret)
}

func newClient(doer connect.HTTPClient, baseURL, secret string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opt := connect.WithCodec(rpc.Codec{})
	return &Client{
		secret: secret,

		addFighter:     connect.NewClient[rpc.AddFighterRequest, rpc.MutationResponse](doer, baseURL+rpc.AddFighterProcedure, opt),
		renameFighter:  connect.NewClient[rpc.RenameFighterRequest, rpc.MutationResponse](doer, baseURL+rpc.RenameFighterProcedure, opt),
		deleteFighter:  connect.NewClient[rpc.DeleteFighterRequest, rpc.MutationResponse](doer, baseURL+rpc.DeleteFighterProcedure, opt),
		overrideRecord: connect.NewClient[rpc.OverrideRecordRequest, rpc.MutationResponse](doer, baseURL+rpc.OverrideRecordProcedure, opt),
		addFight:       connect.NewClient[rpc.AddFightRequest, rpc.MutationResponse](doer, baseURL+rpc.AddFightProcedure, opt),
		editFight:      connect.NewClient[rpc.EditFightRequest, rpc.MutationResponse](doer, baseURL+rpc.EditFightProcedure, opt),
		deleteFight:    connect.NewClient[rpc.DeleteFightRequest, rpc.MutationResponse](doer, baseURL+rpc.DeleteFightProcedure, opt),
		setChampion:    connect.NewClient[rpc.SetChampionRequest, rpc.MutationResponse](doer, baseURL+rpc.SetChampionProcedure, opt),
		recomputeAll:   connect.NewClient[emptypb.Empty, rpc.MutationResponse](doer, baseURL+rpc.RecomputeAllProcedure, opt),

		getRanking:   connect.NewClient[rpc.GetRankingRequest, rpc.GetRankingResponse](doer, baseURL+rpc.GetRankingProcedure, opt),
		listFighters: connect.NewClient[rpc.ListFightersRequest, rpc.ListFightersResponse](doer, baseURL+rpc.ListFightersProcedure, opt),
		listFights:   connect.NewClient[rpc.ListFightsRequest, rpc.ListFightsResponse](doer, baseURL+rpc.ListFightsProcedure, opt),
		getFighter:   connect.NewClient[rpc.GetFighterRequest, rpc.GetFighterResponse](doer, baseURL+rpc.GetFighterProcedure, opt),
	}
}

func doRequest[Req, Res any](ctx context.Context, c *Client, client *connect.Client[Req, Res], msg *Req) (*Res, error) {
	req := connect.NewRequest(msg)
	if c.secret != "" {
		req.Header().Set("Authorization", "Bearer "+c.secret)
	}
	resp, err := client.CallUnary(ctx, req)
	if err != nil {
		return nil, rpc.FromConnectError(err)
	}
	return resp.Msg, nil
}

func (c *Client) AddFighter(ctx context.Context, name, platform string) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.addFighter, &rpc.AddFighterRequest{Name: name, Platform: platform})
}

func (c *Client) RenameFighter(ctx context.Context, platform, oldName, newName string) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.renameFighter, &rpc.RenameFighterRequest{Platform: platform, OldName: oldName, NewName: newName})
}

func (c *Client) DeleteFighter(ctx context.Context, platform, name string) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.deleteFighter, &rpc.DeleteFighterRequest{Platform: platform, Name: name})
}

func (c *Client) OverrideRecord(ctx context.Context, req *rpc.OverrideRecordRequest) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.overrideRecord, req)
}

func (c *Client) AddFight(ctx context.Context, req *rpc.AddFightRequest) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.addFight, req)
}

func (c *Client) EditFight(ctx context.Context, req *rpc.EditFightRequest) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.editFight, req)
}

func (c *Client) DeleteFight(ctx context.Context, id string) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.deleteFight, &rpc.DeleteFightRequest{ID: id})
}

// SetChampion clears the platform's champion when name is empty.
func (c *Client) SetChampion(ctx context.Context, platform, name string) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.setChampion, &rpc.SetChampionRequest{Platform: platform, Name: name})
}

func (c *Client) RecomputeAll(ctx context.Context) (*rpc.MutationResponse, error) {
	return doRequest(ctx, c, c.recomputeAll, &emptypb.Empty{})
}

func (c *Client) GetRanking(ctx context.Context, platform string) (*rpc.GetRankingResponse, error) {
	return doRequest(ctx, c, c.getRanking, &rpc.GetRankingRequest{Platform: platform})
}

func (c *Client) ListFighters(ctx context.Context, platform, query string) (*rpc.ListFightersResponse, error) {
	return doRequest(ctx, c, c.listFighters, &rpc.ListFightersRequest{Platform: platform, Query: query})
}

func (c *Client) ListFights(ctx context.Context, platform, query string) (*rpc.ListFightsResponse, error) {
	return doRequest(ctx, c, c.listFights, &rpc.ListFightsRequest{Platform: platform, Query: query})
}

func (c *Client) GetFighter(ctx context.Context, platform, name string) (*rpc.GetFighterResponse, error) {
	return doRequest(ctx, c, c.getFighter, &rpc.GetFighterRequest{Platform: platform, Name: name})
}
