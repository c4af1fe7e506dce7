package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"ufl-rankings/internal/db"
	"ufl-rankings/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type FighterRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewFighterRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *FighterRepository {
	return &FighterRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *FighterRepository) WithTx(tx *sql.Tx) *FighterRepository {
	return &FighterRepository{queries: r.queries.WithTx(tx), db: r.db, logger: r.logger}
}

func (r *FighterRepository) List(ctx context.Context) ([]domain.Fighter, error) {
	rows, err := r.queries.ListFighters(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Fighter, len(rows))
	for i, row := range rows {
		result[i] = toDomainFighter(row)
	}
	return result, nil
}

// GetByIdentity returns nil without error when no fighter has the identity.
func (r *FighterRepository) GetByIdentity(ctx context.Context, name string, platform domain.Platform) (*domain.Fighter, error) {
	row, err := r.queries.GetFighterByIdentity(ctx, db.GetFighterByIdentityParams{
		NameKey:  domain.NameKey(name),
		Platform: string(platform),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f := toDomainFighter(row)
	return &f, nil
}

func (r *FighterRepository) Upsert(ctx context.Context, fighter *domain.Fighter) error {
	if fighter.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		fighter.ID = id
	}

	r.logger.Debug().
		Str("fighter_id", fighter.ID).
		Str("name", fighter.Name).
		Str("platform", string(fighter.Platform)).
		Msg("upserting fighter")

	return r.queries.UpsertFighter(ctx, db.UpsertFighterParams{
		ID:        fighter.ID,
		Name:      fighter.Name,
		NameKey:   domain.NameKey(fighter.Name),
		Platform:  string(fighter.Platform),
		Wins:      int64(fighter.Record.Wins),
		Losses:    int64(fighter.Record.Losses),
		Draws:     int64(fighter.Record.Draws),
		KoWins:    int64(fighter.Record.KOWins),
		CreatedAt: fighter.CreatedAt,
		UpdatedAt: fighter.UpdatedAt,
	})
}

func (r *FighterRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug().Str("fighter_id", id).Msg("deleting fighter")
	return r.queries.DeleteFighter(ctx, id)
}

func toDomainFighter(row db.Fighter) domain.Fighter {
	return domain.Fighter{
		ID:       row.ID,
		Name:     row.Name,
		Platform: domain.Platform(row.Platform),
		Record: domain.Record{
			Wins:   int(row.Wins),
			Losses: int(row.Losses),
			Draws:  int(row.Draws),
			KOWins: int(row.KoWins),
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
