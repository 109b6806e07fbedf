package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/progression"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
)

var ErrInvalidGameType = errors.New("invalid game type")

type SaveProgressInput struct {
	GameType  model.GameType `json:"game_type"`
	Level     int            `json:"level"`
	Score     int            `json:"score"`
	Completed bool           `json:"completed"`
}

type SaveProgressResult struct {
	PointsEarned int      `json:"points_earned"`
	NewLevel     int      `json:"new_level"`
	NewBadges    []string `json:"new_badges"`
	Badges       []string `json:"badges"`
}

type GameService interface {
	SaveProgress(ctx context.Context, userID string, in SaveProgressInput) (*SaveProgressResult, error)
	History(ctx context.Context, userID string) ([]model.GameProgress, error)
}

type gameService struct {
	progressRepo repository.GameProgressRepository
	ledger       ProgressionService
}

func NewGameService(progressRepo repository.GameProgressRepository, ledger ProgressionService) GameService {
	return &gameService{progressRepo: progressRepo, ledger: ledger}
}

// SaveProgress appends the session record, then runs the score through the
// progression ledger. The score is the point delta.
func (s *gameService) SaveProgress(ctx context.Context, userID string, in SaveProgressInput) (*SaveProgressResult, error) {
	switch in.GameType {
	case model.GameTypeQuiz, model.GameTypeWasteSorting, model.GameTypeEnergySaving:
	default:
		return nil, ErrInvalidGameType
	}
	if in.Score < 0 {
		return nil, errors.New("score must be non-negative")
	}

	progress := &model.GameProgress{
		UserID:    userID,
		GameType:  in.GameType,
		Level:     in.Level,
		Score:     in.Score,
		Completed: in.Completed,
	}
	if in.Completed {
		now := time.Now().UTC()
		progress.CompletedAt = &now
	}
	if err := s.progressRepo.Create(ctx, progress); err != nil {
		return nil, err
	}

	result, err := s.ledger.Apply(ctx, userID, in.Score, progression.AwardContext{
		GameType: in.GameType,
		Level:    in.Level,
		Score:    in.Score,
	})
	if err != nil {
		return nil, err
	}
	return &SaveProgressResult{
		PointsEarned: in.Score,
		NewLevel:     result.Level,
		NewBadges:    result.NewBadges,
		Badges:       result.Badges,
	}, nil
}

func (s *gameService) History(ctx context.Context, userID string) ([]model.GameProgress, error) {
	return s.progressRepo.ListByUser(ctx, userID, 0)
}
