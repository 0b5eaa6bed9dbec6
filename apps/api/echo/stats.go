package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internhive/internhive/core/store"
)

type statsApi struct {
	store *store.Store
}

func registerStatsAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := statsApi{store: opts.Store}

	sg := g.Group("/stats", jwt)
	sg.GET("/dashboard", api.dashboard, adminMiddleware())
	sg.GET("/interns/:id", api.internStats, selfOrAdminMiddleware())
}

// InternStatsResponse aggregates the per-intern dashboard numbers. Rating is
// null when no feedback exists yet; clients render it as "N/A".
type InternStatsResponse struct {
	CompletionRate float64         `json:"completion_rate"`
	AverageRating  *float64        `json:"average_rating"`
	Attendance     store.Breakdown `json:"attendance"`
}

func (api *statsApi) dashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, store.Stats(api.store.State()))
}

func (api *statsApi) internStats(ctx echo.Context) error {
	state := api.store.State()
	id := ctx.Param("id")

	resp := InternStatsResponse{
		CompletionRate: store.CompletionRate(store.TasksFor(state, id)),
		Attendance:     store.AttendanceBreakdown(store.AttendanceFor(state, id)),
	}
	if avg, ok := store.AverageRating(store.FeedbackFor(state, id)); ok {
		resp.AverageRating = &avg
	}
	return ctx.JSON(http.StatusOK, resp)
}
