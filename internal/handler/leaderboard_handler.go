package handler

import (
	"net/http"
	"strconv"

	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type LeaderboardHandler struct {
	svc service.LeaderboardService
}

func NewLeaderboardHandler(svc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

func (h *LeaderboardHandler) Top(c echo.Context) error {
	limit := 10
	if lStr := c.QueryParam("limit"); lStr != "" {
		if parsed, err := strconv.Atoi(lStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	entries, err := h.svc.Top(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch leaderboard"))
	}
	return c.JSON(http.StatusOK, entries)
}
