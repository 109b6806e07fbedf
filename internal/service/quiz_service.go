package service

import (
	"context"
	"errors"
	"math"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer int    `json:"selected_answer"`
}

type GradeResult struct {
	Score   int `json:"score"`
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type QuizService interface {
	Questions(ctx context.Context, category string, limit int) ([]model.QuizQuestion, error)
	Grade(ctx context.Context, answers []QuizAnswer) (*GradeResult, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

// Questions lists up to limit questions, optionally by category. An empty
// table is populated once with the fixed sample set before answering.
func (s *quizService) Questions(ctx context.Context, category string, limit int) ([]model.QuizQuestion, error) {
	questions, err := s.quizRepo.List(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	if len(questions) > 0 {
		return questions, nil
	}
	if err := s.quizRepo.EnsureSeeded(ctx, SampleQuizQuestions()); err != nil {
		return nil, err
	}
	return s.quizRepo.List(ctx, category, limit)
}

// Grade scores a submission against the stored questions. Grading does not
// touch the progression ledger; point award happens when the caller records
// the completed game session.
func (s *quizService) Grade(ctx context.Context, answers []QuizAnswer) (*GradeResult, error) {
	correct := 0
	for _, a := range answers {
		q, err := s.quizRepo.FindByID(ctx, a.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if q.CorrectAnswer == a.SelectedAnswer {
			correct++
		}
	}
	total := len(answers)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return &GradeResult{Score: score, Correct: correct, Total: total}, nil
}

// SampleQuizQuestions is the fixed question set used both by lazy seeding and
// by cmd/seed.
func SampleQuizQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{
			ID:            uuid.NewString(),
			Question:      "What percentage of plastic ever produced has been recycled?",
			Options:       model.StringList{"Less than 10%", "About 25%", "About 50%", "More than 75%"},
			CorrectAnswer: 0,
			Category:      "recycling",
			Difficulty:    1,
		},
		{
			ID:            uuid.NewString(),
			Question:      "Which of these uses the LEAST amount of water?",
			Options:       model.StringList{"Taking a bath", "Taking a 5-minute shower", "Washing dishes by hand", "Running a dishwasher"},
			CorrectAnswer: 3,
			Category:      "water_conservation",
			Difficulty:    1,
		},
		{
			ID:            uuid.NewString(),
			Question:      "What is the main greenhouse gas contributing to climate change?",
			Options:       model.StringList{"Oxygen", "Nitrogen", "Carbon Dioxide", "Helium"},
			CorrectAnswer: 2,
			Category:      "climate",
			Difficulty:    1,
		},
		{
			ID:            uuid.NewString(),
			Question:      "How long does it take for a plastic bottle to decompose?",
			Options:       model.StringList{"10 years", "50 years", "100 years", "450 years"},
			CorrectAnswer: 3,
			Category:      "pollution",
			Difficulty:    2,
		},
		{
			ID:            uuid.NewString(),
			Question:      "Which renewable energy source is most widely used globally?",
			Options:       model.StringList{"Solar", "Wind", "Hydroelectric", "Geothermal"},
			CorrectAnswer: 2,
			Category:      "energy",
			Difficulty:    2,
		},
	}
}
