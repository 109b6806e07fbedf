package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Points   int      `json:"points"`
	Level    int      `json:"level"`
	Badges   []string `json:"badges"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

func toUserResponse(u *model.User) UserResponse {
	badges := []string(u.Badges)
	if badges == nil {
		badges = []string{}
	}
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Points:   u.Points,
		Level:    u.Level,
		Badges:   badges,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Password == "" || !strings.Contains(req.Email, "@") {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "username, email and password are required"))
	}

	user, token, err := h.svc.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "email already registered"))
		case errors.Is(err, service.ErrUsernameTaken):
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "username already taken"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "registration failed"))
	}
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user, token, err := h.svc.Login(c.Request().Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "invalid email or password"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "login failed"))
	}
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing user"))
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
