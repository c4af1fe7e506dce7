package db

import (
	"context"
	"time"
)

const listFighters = `-- name: ListFighters :many
SELECT id, name, name_key, platform, wins, losses, draws, ko_wins, created_at, updated_at
FROM fighters
ORDER BY created_at, id
`

func (q *Queries) ListFighters(ctx context.Context) ([]Fighter, error) {
	rows, err := q.db.QueryContext(ctx, listFighters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Fighter
	for rows.Next() {
		var i Fighter
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.NameKey,
			&i.Platform,
			&i.Wins,
			&i.Losses,
			&i.Draws,
			&i.KoWins,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getFighterByIdentity = `-- name: GetFighterByIdentity :one
SELECT id, name, name_key, platform, wins, losses, draws, ko_wins, created_at, updated_at
FROM fighters
WHERE name_key = ? AND platform = ?
`

type GetFighterByIdentityParams struct {
	NameKey  string
	Platform string
}

func (q *Queries) GetFighterByIdentity(ctx context.Context, arg GetFighterByIdentityParams) (Fighter, error) {
	row := q.db.QueryRowContext(ctx, getFighterByIdentity, arg.NameKey, arg.Platform)
	var i Fighter
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.NameKey,
		&i.Platform,
		&i.Wins,
		&i.Losses,
		&i.Draws,
		&i.KoWins,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertFighter = `-- name: UpsertFighter :exec
INSERT INTO fighters (id, name, name_key, platform, wins, losses, draws, ko_wins, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    name_key = excluded.name_key,
    platform = excluded.platform,
    wins = excluded.wins,
    losses = excluded.losses,
    draws = excluded.draws,
    ko_wins = excluded.ko_wins,
    updated_at = excluded.updated_at
`

type UpsertFighterParams struct {
	ID        string
	Name      string
	NameKey   string
	Platform  string
	Wins      int64
	Losses    int64
	Draws     int64
	KoWins    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertFighter(ctx context.Context, arg UpsertFighterParams) error {
	_, err := q.db.ExecContext(ctx, upsertFighter,
		arg.ID,
		arg.Name,
		arg.NameKey,
		arg.Platform,
		arg.Wins,
		arg.Losses,
		arg.Draws,
		arg.KoWins,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteFighter = `-- name: DeleteFighter :exec
DELETE FROM fighters WHERE id = ?
`

func (q *Queries) DeleteFighter(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteFighter, id)
	return err
}
