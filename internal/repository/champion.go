package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"ufl-rankings/internal/db"
	"ufl-rankings/internal/domain"

	"github.com/rs/zerolog"
)

type ChampionRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewChampionRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ChampionRepository {
	return &ChampionRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *ChampionRepository) WithTx(tx *sql.Tx) *ChampionRepository {
	return &ChampionRepository{queries: r.queries.WithTx(tx), db: r.db, logger: r.logger}
}

func (r *ChampionRepository) List(ctx context.Context) (map[domain.Platform]string, error) {
	rows, err := r.queries.ListChampions(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[domain.Platform]string, len(rows))
	for _, row := range rows {
		result[domain.Platform(row.Platform)] = row.FighterName
	}
	return result, nil
}

func (r *ChampionRepository) Get(ctx context.Context, platform domain.Platform) (string, bool, error) {
	row, err := r.queries.GetChampion(ctx, string(platform))
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.FighterName, true, nil
}

// Set assigns the platform's champion. An empty name clears the slot.
func (r *ChampionRepository) Set(ctx context.Context, platform domain.Platform, name string, now time.Time) error {
	r.logger.Debug().Str("platform", string(platform)).Str("name", name).Msg("setting champion")
	if name == "" {
		return r.queries.DeleteChampion(ctx, string(platform))
	}
	return r.queries.UpsertChampion(ctx, db.UpsertChampionParams{
		Platform:    string(platform),
		FighterName: name,
		UpdatedAt:   now,
	})
}
