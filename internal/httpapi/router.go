// Package httpapi serves the public read-only views over plain JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/engine"
	"ufl-rankings/internal/rpc"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Views is the read side of the ranking service.
type Views interface {
	GetRanking(ctx context.Context, platform domain.Platform) (engine.Leaderboard, error)
	ListFighters(ctx context.Context, platform domain.Platform, query string) ([]domain.Fighter, error)
	ListFights(ctx context.Context, platform domain.Platform, query string) ([]domain.Fight, error)
	GetFighter(ctx context.Context, name string, platform domain.Platform) (domain.Fighter, []domain.Fight, error)
	Champions(ctx context.Context) ([]domain.Fighter, error)
	Degraded() bool
}

type Handler struct {
	views  Views
	logger zerolog.Logger
}

func NewHandler(views Views, logger zerolog.Logger) *Handler {
	return &Handler{views: views, logger: logger}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/rankings/{platform}", h.ranking)
		r.Get("/fighters", h.fighters)
		r.Get("/fighters/{platform}/{name}", h.fighter)
		r.Get("/fights", h.fights)
		r.Get("/champions", h.champions)
	})
	return r
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSelfFight),
		errors.Is(err, domain.ErrInconsistentMethod),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	if h.views.Degraded() {
		w.Header().Set("X-Degraded", "true")
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn().Err(err).Msg("failed to write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	h.writeJSON(w, status, errorBody{Error: err.Error(), Kind: domain.Kind(err)})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.views.Degraded() {
		status = "degraded"
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) ranking(w http.ResponseWriter, r *http.Request) {
	platform, err := rpc.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	lb, err := h.views.GetRanking(r.Context(), platform)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := rpc.FromLeaderboard(lb)
	resp.Degraded = h.views.Degraded()
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) fighters(w http.ResponseWriter, r *http.Request) {
	platform, err := rpc.ParsePlatformFilter(r.URL.Query().Get("platform"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fighters, err := h.views.ListFighters(r.Context(), platform, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rpc.ListFightersResponse{Fighters: rpc.FromFighters(fighters), Degraded: h.views.Degraded()})
}

func (h *Handler) fighter(w http.ResponseWriter, r *http.Request) {
	platform, err := rpc.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	f, fights, err := h.views.GetFighter(r.Context(), chi.URLParam(r, "name"), platform)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rpc.GetFighterResponse{Fighter: rpc.FromFighter(f), Fights: rpc.FromFights(fights), Degraded: h.views.Degraded()})
}

func (h *Handler) fights(w http.ResponseWriter, r *http.Request) {
	platform, err := rpc.ParsePlatformFilter(r.URL.Query().Get("platform"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fights, err := h.views.ListFights(r.Context(), platform, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rpc.ListFightsResponse{Fights: rpc.FromFights(fights), Degraded: h.views.Degraded()})
}

func (h *Handler) champions(w http.ResponseWriter, r *http.Request) {
	champs, err := h.views.Champions(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]rpc.Fighter{"champions": rpc.FromFighters(champs)})
}
