package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type GameHandler struct {
	svc service.GameService
}

func NewGameHandler(svc service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

type GameProgressResponse struct {
	ID          string  `json:"id"`
	GameType    string  `json:"game_type"`
	Level       int     `json:"level"`
	Score       int     `json:"score"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at"`
	CreatedAt   string  `json:"created_at"`
}

func toGameProgressResponse(p model.GameProgress) GameProgressResponse {
	resp := GameProgressResponse{
		ID:        p.ID,
		GameType:  string(p.GameType),
		Level:     p.Level,
		Score:     p.Score,
		Completed: p.Completed,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.CompletedAt != nil {
		s := p.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

func (h *GameHandler) SaveProgress(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing user"))
	}
	var in service.SaveProgressInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	result, err := h.svc.SaveProgress(c.Request().Context(), user.ID, in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGameType) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid game type"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to save progress"))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Progress saved",
		"points_earned": result.PointsEarned,
		"new_level":     result.NewLevel,
		"new_badges":    result.Badges,
	})
}

func (h *GameHandler) History(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing user"))
	}
	list, err := h.svc.History(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch progress"))
	}
	resp := make([]GameProgressResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, toGameProgressResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}
