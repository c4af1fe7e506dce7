package db

import (
	"context"
	"time"
)

const listChampions = `-- name: ListChampions :many
SELECT platform, fighter_name, updated_at FROM champions ORDER BY platform
`

func (q *Queries) ListChampions(ctx context.Context) ([]Champion, error) {
	rows, err := q.db.QueryContext(ctx, listChampions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Champion
	for rows.Next() {
		var i Champion
		if err := rows.Scan(&i.Platform, &i.FighterName, &i.UpdatedAt); err != nil {
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

const getChampion = `-- name: GetChampion :one
SELECT platform, fighter_name, updated_at FROM champions WHERE platform = ?
`

func (q *Queries) GetChampion(ctx context.Context, platform string) (Champion, error) {
	row := q.db.QueryRowContext(ctx, getChampion, platform)
	var i Champion
	err := row.Scan(&i.Platform, &i.FighterName, &i.UpdatedAt)
	return i, err
}

const upsertChampion = `-- name: UpsertChampion :exec
INSERT INTO champions (platform, fighter_name, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (platform) DO UPDATE SET
    fighter_name = excluded.fighter_name,
    updated_at = excluded.updated_at
`

type UpsertChampionParams struct {
	Platform    string
	FighterName string
	UpdatedAt   time.Time
}

func (q *Queries) UpsertChampion(ctx context.Context, arg UpsertChampionParams) error {
	_, err := q.db.ExecContext(ctx, upsertChampion, arg.Platform, arg.FighterName, arg.UpdatedAt)
	return err
}

const deleteChampion = `-- name: DeleteChampion :exec
DELETE FROM champions WHERE platform = ?
`

func (q *Queries) DeleteChampion(ctx context.Context, platform string) error {
	_, err := q.db.ExecContext(ctx, deleteChampion, platform)
	return err
}
