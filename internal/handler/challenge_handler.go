package handler

import (
	"errors"
	"net/http"

	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ChallengeHandler struct {
	svc service.ChallengeService
}

func NewChallengeHandler(svc service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{svc: svc}
}

type submitProofRequest struct {
	ChallengeID string `json:"challenge_id"`
	ProofData   string `json:"proof_data"`
}

func (h *ChallengeHandler) List(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing user"))
	}
	challenges, err := h.svc.List(c.Request().Context(), user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch challenges"))
	}
	return c.JSON(http.StatusOK, challenges)
}

func (h *ChallengeHandler) SubmitProof(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing user"))
	}
	var req submitProofRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.ChallengeID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "challenge_id is required"))
	}

	result, err := h.svc.SubmitProof(c.Request().Context(), user, req.ChallengeID, req.ProofData)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "challenge not found"))
		case errors.Is(err, service.ErrChallengeLocked):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "challenge is locked, earn more points to unlock"))
		case errors.Is(err, service.ErrAlreadySubmitted):
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "proof already submitted for this challenge"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to submit proof"))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Proof submitted and approved!",
		"points_earned": result.PointsEarned,
		"new_level":     result.NewLevel,
		"badge_earned":  result.BadgeEarned,
	})
}
