package handler

import (
	"log/slog"
	"net/http"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
)

// RankingsHandler handles the leaderboard pages
type RankingsHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewRankingsHandler creates a new RankingsHandler
func NewRankingsHandler(api *glapi.Client, logger *slog.Logger) *RankingsHandler {
	return &RankingsHandler{api: api, logger: logger}
}

type rankingsPage struct {
	Scope    string
	Query    string
	Rankings *model.RankingList
	Pager
}

// List renders the selected leaderboard. The page's scope names differ from
// the backend's, so they are mapped here.
func (h *RankingsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope := q.Get("scope")
	if scope == "" {
		scope = "seasonal"
	}

	filter := glapi.RankingFilter{
		Scope:  backendScope(scope),
		Query:  q.Get("q"),
		Limit:  pageSize,
		Offset: formInt(r, "offset"),
	}

	data := rankingsPage{Scope: scope, Query: filter.Query, Rankings: &model.RankingList{}}

	rankings, err := h.api.ListRankings(r.Context(), filter)
	if err != nil {
		renderError(w, r, "rankings", "Rankings", "rankings", data, errorMessage(err))
		return
	}

	data.Rankings = rankings
	data.Pager = paginate("/rankings", q, filter.Offset, rankings.Total)
	render(w, r, "rankings", "Rankings", "rankings", data)
}

func backendScope(scope string) model.RankingScope {
	switch scope {
	case "monthly":
		return model.ScopeMonthly
	case "all":
		return model.ScopeAllTime
	default:
		return model.ScopeSeason
	}
}
