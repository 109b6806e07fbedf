package handler

import (
	"github.com/ecoquest/ecoquest-backend/internal/middleware"
	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/labstack/echo/v4"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// currentUser returns the user the auth middleware resolved for this request.
func currentUser(c echo.Context) *model.User {
	u, _ := c.Get(middleware.UserContextKey).(*model.User)
	return u
}
