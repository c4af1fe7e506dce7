package domain

import (
	"fmt"
	"strings"
	"time"
)

type Platform string

const (
	PlatformPC   Platform = "PC"
	PlatformPS5  Platform = "PS5"
	PlatformXBOX Platform = "XBOX"
)

var Platforms = []Platform{PlatformPC, PlatformPS5, PlatformXBOX}

// ParsePlatform accepts the bare platform names as well as the "UFL <platform>"
// labels used by the leaderboard tabs.
func ParsePlatform(s string) (Platform, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimSpace(strings.TrimPrefix(v, "UFL"))
	switch Platform(v) {
	case PlatformPC, PlatformPS5, PlatformXBOX:
		return Platform(v), nil
	}
	return "", fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, s)
}

type Method string

const (
	MethodKO       Method = "KO"
	MethodDecision Method = "Decision"
	MethodDraw     Method = "Draw"
)

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ko":
		return MethodKO, nil
	case "decision":
		return MethodDecision, nil
	case "draw":
		return MethodDraw, nil
	}
	return "", fmt.Errorf("%w: unknown method %q", ErrInvalidInput, s)
}

// DrawWinner is the winner sentinel of a drawn fight.
const DrawWinner = "Draw"

// DateLayout is the calendar-date format fights are stored and exchanged in.
const DateLayout = "2006-01-02"

// NameKey is the comparison key of a fighter name. Two names with the same key
// on one platform refer to the same fighter.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func IsDraw(winner string) bool {
	return NameKey(winner) == NameKey(DrawWinner)
}

type Identity struct {
	Name     string
	Platform Platform
}

func (i Identity) Key() IdentityKey {
	return IdentityKey{Name: NameKey(i.Name), Platform: i.Platform}
}

func (i Identity) String() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Platform)
}

// IdentityKey is the normalized natural key of a fighter.
type IdentityKey struct {
	Name     string
	Platform Platform
}

type Record struct {
	Wins   int
	Losses int
	Draws  int
	KOWins int
}

func (r Record) Total() int {
	return r.Wins + r.Losses + r.Draws
}

type Fighter struct {
	ID        string // nanoid
	Name      string
	Platform  Platform
	Record    Record
	Champion  bool // derived from the champion registry when a view is built
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f Fighter) Identity() Identity {
	return Identity{Name: f.Name, Platform: f.Platform}
}

type Fight struct {
	ID        string // nanoid
	Fighter1  string
	Fighter2  string
	Winner    string // Fighter1, Fighter2 or DrawWinner
	Method    Method
	Platform  Platform
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Involves reports whether name fought in f.
func (f Fight) Involves(name string) bool {
	k := NameKey(name)
	return NameKey(f.Fighter1) == k || NameKey(f.Fighter2) == k
}

// Loser returns the losing fighter name, or "" for a draw.
func (f Fight) Loser() string {
	if IsDraw(f.Winner) {
		return ""
	}
	if NameKey(f.Winner) == NameKey(f.Fighter1) {
		return f.Fighter2
	}
	return f.Fighter1
}

// FightInput carries the caller-supplied fields of a new fight.
type FightInput struct {
	Fighter1 string
	Fighter2 string
	Winner   string
	Method   Method
	Platform Platform
	Date     time.Time
}

// FightPatch carries the fields of an edit. Nil fields keep their value.
type FightPatch struct {
	Fighter1 *string
	Fighter2 *string
	Winner   *string
	Method   *Method
	Platform *Platform
	Date     *time.Time
}

func (p FightPatch) Apply(f Fight) FightInput {
	in := FightInput{
		Fighter1: f.Fighter1,
		Fighter2: f.Fighter2,
		Winner:   f.Winner,
		Method:   f.Method,
		Platform: f.Platform,
		Date:     f.Date,
	}
	if p.Fighter1 != nil {
		in.Fighter1 = *p.Fighter1
	}
	if p.Fighter2 != nil {
		in.Fighter2 = *p.Fighter2
	}
	if p.Winner != nil {
		in.Winner = *p.Winner
	}
	if p.Method != nil {
		in.Method = *p.Method
	}
	if p.Platform != nil {
		in.Platform = *p.Platform
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	return in
}
