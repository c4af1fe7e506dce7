package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"ufl-rankings/internal/db"
	"ufl-rankings/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var ErrFightNotFound = errors.New("fight not found")

type FightRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewFightRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *FightRepository {
	return &FightRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *FightRepository) WithTx(tx *sql.Tx) *FightRepository {
	return &FightRepository{queries: r.queries.WithTx(tx), db: r.db, logger: r.logger}
}

func (r *FightRepository) List(ctx context.Context) ([]domain.Fight, error) {
	rows, err := r.queries.ListFights(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Fight, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(domain.DateLayout, row.FightDate)
		if err != nil {
			return nil, fmt.Errorf("fight %s has bad date %q: %w", row.ID, row.FightDate, err)
		}
		result = append(result, domain.Fight{
			ID:        row.ID,
			Fighter1:  row.Fighter1,
			Fighter2:  row.Fighter2,
			Winner:    row.Winner,
			Method:    domain.Method(row.Method),
			Platform:  domain.Platform(row.Platform),
			Date:      date,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return result, nil
}

// Append inserts a fight, assigning a nanoid when it has none, and returns its id.
func (r *FightRepository) Append(ctx context.Context, fight *domain.Fight) (string, error) {
	if fight.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return "", fmt.Errorf("failed to generate nanoid: %w", err)
		}
		fight.ID = id
	}

	err := r.queries.InsertFight(ctx, db.InsertFightParams{
		ID:        fight.ID,
		Fighter1:  fight.Fighter1,
		Fighter2:  fight.Fighter2,
		Winner:    fight.Winner,
		Method:    string(fight.Method),
		Platform:  string(fight.Platform),
		FightDate: fight.Date.Format(domain.DateLayout),
		CreatedAt: fight.CreatedAt,
		UpdatedAt: fight.UpdatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert fight %s: %w", fight.ID, err)
	}
	return fight.ID, nil
}

func (r *FightRepository) Update(ctx context.Context, fight domain.Fight) error {
	n, err := r.queries.UpdateFight(ctx, db.UpdateFightParams{
		Fighter1:  fight.Fighter1,
		Fighter2:  fight.Fighter2,
		Winner:    fight.Winner,
		Method:    string(fight.Method),
		Platform:  string(fight.Platform),
		FightDate: fight.Date.Format(domain.DateLayout),
		UpdatedAt: fight.UpdatedAt,
		ID:        fight.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to update fight %s: %w", fight.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrFightNotFound, fight.ID)
	}
	return nil
}

func (r *FightRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug().Str("fight_id", id).Msg("deleting fight")
	return r.queries.DeleteFight(ctx, id)
}
