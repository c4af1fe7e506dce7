// Package rpc holds the wire messages of the ranking service together with
// the codec and error mapping shared by the connect handlers and the client.
package rpc

const (
	ServiceName = "ufl.v1.RankingService"
	ServicePath = "/" + ServiceName + "/"
)

const (
	AddFighterProcedure     = ServicePath + "AddFighter"
	RenameFighterProcedure  = ServicePath + "RenameFighter"
	DeleteFighterProcedure  = ServicePath + "DeleteFighter"
	OverrideRecordProcedure = ServicePath + "OverrideRecord"
	AddFightProcedure       = ServicePath + "AddFight"
	EditFightProcedure      = ServicePath + "EditFight"
	DeleteFightProcedure    = ServicePath + "DeleteFight"
	SetChampionProcedure    = ServicePath + "SetChampion"
	RecomputeAllProcedure   = ServicePath + "RecomputeAll"

	GetRankingProcedure   = ServicePath + "GetRanking"
	ListFightersProcedure = ServicePath + "ListFighters"
	ListFightsProcedure   = ServicePath + "ListFights"
	GetFighterProcedure   = ServicePath + "GetFighter"
)

// AdminProcedures require the shared admin secret.
var AdminProcedures = map[string]bool{
	AddFighterProcedure:     true,
	RenameFighterProcedure:  true,
	DeleteFighterProcedure:  true,
	OverrideRecordProcedure: true,
	AddFightProcedure:       true,
	EditFightProcedure:      true,
	DeleteFightProcedure:    true,
	SetChampionProcedure:    true,
	RecomputeAllProcedure:   true,
}
