package rpc

type Fighter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Draws     int    `json:"draws"`
	KOWins    int    `json:"koWins"`
	Champion  bool   `json:"champion"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type Fight struct {
	ID        string `json:"id"`
	Fighter1  string `json:"fighter1"`
	Fighter2  string `json:"fighter2"`
	Winner    string `json:"winner"`
	Method    string `json:"method"`
	Platform  string `json:"platform"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type Contender struct {
	Position   int     `json:"position"`
	Score      int     `json:"score"`
	RecentWins int     `json:"recentWins"`
	Fighter    Fighter `json:"fighter"`
}

// MutationResponse is returned by every admin call: the fighters and fights
// the call touched, as they are after it.
type MutationResponse struct {
	Fighters []Fighter `json:"fighters"`
	Fights   []Fight   `json:"fights"`
}

type AddFighterRequest struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
}

type RenameFighterRequest struct {
	Platform string `json:"platform"`
	OldName  string `json:"oldName"`
	NewName  string `json:"newName"`
}

type DeleteFighterRequest struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
}

type OverrideRecordRequest struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
	KOWins   int    `json:"koWins"`
}

type AddFightRequest struct {
	Fighter1 string `json:"fighter1"`
	Fighter2 string `json:"fighter2"`
	Winner   string `json:"winner"`
	Method   string `json:"method"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
}

// EditFightRequest carries only the fields to change.
type EditFightRequest struct {
	ID       string  `json:"id"`
	Fighter1 *string `json:"fighter1,omitempty"`
	Fighter2 *string `json:"fighter2,omitempty"`
	Winner   *string `json:"winner,omitempty"`
	Method   *string `json:"method,omitempty"`
	Platform *string `json:"platform,omitempty"`
	Date     *string `json:"date,omitempty"`
}

type DeleteFightRequest struct {
	ID string `json:"id"`
}

// SetChampionRequest with an empty name clears the platform's champion.
type SetChampionRequest struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
}

type GetRankingRequest struct {
	Platform string `json:"platform"`
}

type GetRankingResponse struct {
	Platform   string      `json:"platform"`
	Champion   *Fighter    `json:"champion,omitempty"`
	Contenders []Contender `json:"contenders"`
	Degraded   bool        `json:"degraded,omitempty"`
}

type ListFightersRequest struct {
	Platform string `json:"platform,omitempty"`
	Query    string `json:"query,omitempty"`
}

type ListFightersResponse struct {
	Fighters []Fighter `json:"fighters"`
	Degraded bool      `json:"degraded,omitempty"`
}

type ListFightsRequest struct {
	Platform string `json:"platform,omitempty"`
	Query    string `json:"query,omitempty"`
}

type ListFightsResponse struct {
	Fights   []Fight `json:"fights"`
	Degraded bool    `json:"degraded,omitempty"`
}

type GetFighterRequest struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
}

type GetFighterResponse struct {
	Fighter  Fighter `json:"fighter"`
	Fights   []Fight `json:"fights"`
	Degraded bool    `json:"degraded,omitempty"`
}
