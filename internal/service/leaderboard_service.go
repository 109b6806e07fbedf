package service

import (
	"context"

	"github.com/ecoquest/ecoquest-backend/internal/repository"
)

type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
	Rank     int    `json:"rank"`
}

type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type leaderboardService struct {
	userRepo repository.UserRepository
}

func NewLeaderboardService(userRepo repository.UserRepository) LeaderboardService {
	return &leaderboardService{userRepo: userRepo}
}

// Top ranks users by points. Ranks are positional: tied users get
// consecutive ranks in a stable order, not equal ones.
func (s *leaderboardService) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	users, err := s.userRepo.TopByPoints(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Username: u.Username,
			Points:   u.Points,
			Level:    u.Level,
			Rank:     i + 1,
		})
	}
	return entries, nil
}
