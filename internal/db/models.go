package db

import (
	"time"
)

type Fighter struct {
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

type Fight struct {
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

type Champion struct {
	Platform    string
	FighterName string
	UpdatedAt   time.Time
}
