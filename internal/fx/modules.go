package fx

import (
	"database/sql"
	"ufl-rankings/internal/config"
	"ufl-rankings/internal/database"
	"ufl-rankings/internal/db"
	"ufl-rankings/internal/httpapi"
	"ufl-rankings/internal/logger"
	"ufl-rankings/internal/repository"
	"ufl-rankings/internal/server"
	"ufl-rankings/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideStore(s *repository.Store) service.Store {
	return s
}

func ProvideViews(s *service.RankingService) httpapi.Views {
	return s
}

var Module = fx.Options(
	config.Module,
	logger.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewFighterRepository),
	fx.Provide(repository.NewFightRepository),
	fx.Provide(repository.NewChampionRepository),
	fx.Provide(repository.NewStore),
	fx.Provide(ProvideStore),
	// svc
	fx.Provide(service.NewRankingService),
	fx.Provide(ProvideViews),
	// server
	fx.Provide(server.NewRankingServer),
	fx.Provide(httpapi.NewHandler),
)
