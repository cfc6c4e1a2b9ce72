package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pechomax/pechomax-api/internal/core/ports"
)

const maxLeaderboardLimit = 100

// LeaderboardHandler serves the cached angler ranking.
type LeaderboardHandler struct {
	cache ports.ScoreCache
}

func NewLeaderboardHandler(cache ports.ScoreCache) *LeaderboardHandler {
	return &LeaderboardHandler{cache: cache}
}

// Top returns the highest-scoring anglers. Ranks come from the cache and may
// lag the store by one progression write.
//
// @Summary      Leaderboard
// @Tags         leaderboard
// @Produce      json
// @Param        limit  query    int  false  "Maximum entries (default 10)"
// @Success      200    {array}  ports.RankEntry
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Top(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := h.cache.Top(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
