package db

import (
	"context"
	"time"
)

const listFights = `-- name: ListFights :many
SELECT id, fighter1, fighter2, winner, method, platform, fight_date, created_at, updated_at
FROM fights
ORDER BY created_at, id
`

func (q *Queries) ListFights(ctx context.Context) ([]Fight, error) {
	rows, err := q.db.QueryContext(ctx, listFights)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Fight
	for rows.Next() {
		var i Fight
		if err := rows.Scan(
			&i.ID,
			&i.Fighter1,
			&i.Fighter2,
			&i.Winner,
			&i.Method,
			&i.Platform,
			&i.FightDate,
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

const insertFight = `-- name: InsertFight :exec
INSERT INTO fights (id, fighter1, fighter2, winner, method, platform, fight_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertFightParams struct {
	ID        string
	Fighter1  string
	Fighter2  string
	Winner    string
	Method    string
	Platform  string
	FightDate string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertFight(ctx context.Context, arg InsertFightParams) error {
	_, err := q.db.ExecContext(ctx, insertFight,
		arg.ID,
		arg.Fighter1,
		arg.Fighter2,
		arg.Winner,
		arg.Method,
		arg.Platform,
		arg.FightDate,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateFight = `-- name: UpdateFight :execrows
UPDATE fights
SET fighter1 = ?, fighter2 = ?, winner = ?, method = ?, platform = ?, fight_date = ?, updated_at = ?
WHERE id = ?
`

type UpdateFightParams struct {
	Fighter1  string
	Fighter2  string
	Winner    string
	Method    string
	Platform  string
	FightDate string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateFight(ctx context.Context, arg UpdateFightParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateFight,
		arg.Fighter1,
		arg.Fighter2,
		arg.Winner,
		arg.Method,
		arg.Platform,
		arg.FightDate,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteFight = `-- name: DeleteFight :exec
DELETE FROM fights WHERE id = ?
`

func (q *Queries) DeleteFight(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteFight, id)
	return err
}
