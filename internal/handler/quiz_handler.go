package handler

import (
	"net/http"
	"strconv"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type QuizHandler struct {
	svc service.QuizService
}

func NewQuizHandler(svc service.QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type QuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Category      string   `json:"category"`
	Difficulty    int      `json:"difficulty"`
}

func toQuestionResponse(q model.QuizQuestion) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
	}
}

func (h *QuizHandler) Questions(c echo.Context) error {
	category := c.QueryParam("category")
	limit := 10
	if lStr := c.QueryParam("limit"); lStr != "" {
		if parsed, err := strconv.Atoi(lStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	questions, err := h.svc.Questions(c.Request().Context(), category, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch questions"))
	}
	resp := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, toQuestionResponse(q))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *QuizHandler) Submit(c echo.Context) error {
	var answers []service.QuizAnswer
	if err := c.Bind(&answers); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	result, err := h.svc.Grade(c.Request().Context(), answers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to grade submission"))
	}
	return c.JSON(http.StatusOK, result)
}
