package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/engine"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Store is the sqlite-backed entity store. Writes of one change set are
// applied in a single transaction.
type Store struct {
	db        *sql.DB
	fighters  *FighterRepository
	fights    *FightRepository
	champions *ChampionRepository
	logger    zerolog.Logger
}

func NewStore(sqlDB *sql.DB, fighters *FighterRepository, fights *FightRepository, champions *ChampionRepository, logger zerolog.Logger) *Store {
	return &Store{
		db:        sqlDB,
		fighters:  fighters,
		fights:    fights,
		champions: champions,
		logger:    logger,
	}
}

// Load reads the three collections concurrently.
func (s *Store) Load(ctx context.Context) (*engine.Snapshot, error) {
	var (
		fighters  []domain.Fighter
		fights    []domain.Fight
		champions map[domain.Platform]string
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fighters, err = s.fighters.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list fighters: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fights, err = s.fights.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list fights: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		champions, err = s.champions.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list champions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to load snapshot")
		return nil, err
	}

	s.logger.Debug().
		Int("fighters", len(fighters)).
		Int("fights", len(fights)).
		Int("champions", len(champions)).
		Msg("snapshot loaded")
	return engine.NewSnapshot(fighters, fights, champions), nil
}

func (s *Store) Apply(ctx context.Context, cs engine.ChangeSet) error {
	if cs.Empty() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	fighters := s.fighters.WithTx(tx)
	fights := s.fights.WithTx(tx)
	champions := s.champions.WithTx(tx)

	for _, id := range cs.DeleteFights {
		if err := fights.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete fight %s: %w", id, err)
		}
	}
	for _, id := range cs.DeleteFighters {
		if err := fighters.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete fighter %s: %w", id, err)
		}
	}
	for i := range cs.UpsertFighters {
		if err := fighters.Upsert(ctx, &cs.UpsertFighters[i]); err != nil {
			return fmt.Errorf("failed to upsert fighter %s: %w", cs.UpsertFighters[i].Name, err)
		}
	}
	for i := range cs.InsertFights {
		if _, err := fights.Append(ctx, &cs.InsertFights[i]); err != nil {
			return err
		}
	}
	for _, f := range cs.UpdateFights {
		if err := fights.Update(ctx, f); err != nil {
			return err
		}
	}
	now := time.Now().UTC()
	for _, p := range domain.Platforms {
		name, ok := cs.Champions[p]
		if !ok {
			continue
		}
		if err := champions.Set(ctx, p, name, now); err != nil {
			return fmt.Errorf("failed to set champion for %s: %w", p, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Debug().
		Int("upsert_fighters", len(cs.UpsertFighters)).
		Int("delete_fighters", len(cs.DeleteFighters)).
		Int("insert_fights", len(cs.InsertFights)).
		Int("update_fights", len(cs.UpdateFights)).
		Int("delete_fights", len(cs.DeleteFights)).
		Int("champions", len(cs.Champions)).
		Msg("change set applied")
	return nil
}
