package service

import (
	"context"
	"errors"

	"github.com/ecoquest/ecoquest-backend/internal/progression"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// ProgressResult is the outcome of one ledger application.
type ProgressResult struct {
	Points    int
	Level     int
	NewBadges []string
	Badges    []string
}

// ProgressionService is the ledger the game engine calls into after a scoring
// decision: it applies the point delta, recomputes the level, evaluates badge
// rules, and appends achievement notifications. Challenge rewards run the same
// routine inside the submission transaction.
type ProgressionService interface {
	Apply(ctx context.Context, userID string, delta int, award progression.AwardContext) (*ProgressResult, error)
}

type progressionService struct {
	userRepo repository.UserRepository
}

func NewProgressionService(userRepo repository.UserRepository) ProgressionService {
	return &progressionService{userRepo: userRepo}
}

func (s *progressionService) Apply(ctx context.Context, userID string, delta int, award progression.AwardContext) (*ProgressResult, error) {
	user, earned, err := s.userRepo.ApplyProgress(ctx, userID, delta, award)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ProgressResult{
		Points:    user.Points,
		Level:     user.Level,
		NewBadges: earned,
		Badges:    user.Badges,
	}, nil
}
