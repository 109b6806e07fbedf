package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/progression"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrChallengeLocked  = errors.New("challenge is locked")
	ErrAlreadySubmitted = errors.New("proof already submitted for this challenge")
)

// ChallengeStatus is a catalog entry annotated with the requesting user's
// unlock and submission state.
type ChallengeStatus struct {
	model.Challenge
	Unlocked  bool                    `json:"unlocked"`
	Submitted bool                    `json:"submitted"`
	Status    *model.SubmissionStatus `json:"status"`
}

type SubmitProofResult struct {
	PointsEarned int    `json:"points_earned"`
	NewLevel     int    `json:"new_level"`
	BadgeEarned  string `json:"badge_earned,omitempty"`
}

type ChallengeService interface {
	List(ctx context.Context, user *model.User) ([]ChallengeStatus, error)
	SubmitProof(ctx context.Context, user *model.User, challengeID, proofData string) (*SubmitProofResult, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	proofRepo     repository.ProofSubmissionRepository
	notifications NotificationService
}

func NewChallengeService(
	challengeRepo repository.ChallengeRepository,
	proofRepo repository.ProofSubmissionRepository,
	notifications NotificationService,
) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		proofRepo:     proofRepo,
		notifications: notifications,
	}
}

func (s *challengeService) List(ctx context.Context, user *model.User) ([]ChallengeStatus, error) {
	challenges, err := s.challengeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(challenges) == 0 {
		if err := s.challengeRepo.EnsureSeeded(ctx, SampleChallenges()); err != nil {
			return nil, err
		}
		if challenges, err = s.challengeRepo.List(ctx); err != nil {
			return nil, err
		}
	}

	subs, err := s.proofRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	byChallenge := make(map[string]model.ProofSubmission, len(subs))
	for _, sub := range subs {
		byChallenge[sub.ChallengeID] = sub
	}

	out := make([]ChallengeStatus, 0, len(challenges))
	for _, c := range challenges {
		cs := ChallengeStatus{
			Challenge: c,
			Unlocked:  user.Points >= c.PointsRequired,
		}
		if sub, ok := byChallenge[c.ID]; ok {
			cs.Submitted = true
			status := sub.Status
			cs.Status = &status
		}
		out = append(out, cs)
	}
	return out, nil
}

// SubmitProof accepts proof for an unlocked challenge, auto-approves it, and
// applies the reward. Insert, approval and reward commit as one transaction in
// the repository, so a failed award leaves no submission behind and the user
// can retry. The unique submission index makes the duplicate check race-free.
func (s *challengeService) SubmitProof(ctx context.Context, user *model.User, challengeID, proofData string) (*SubmitProofResult, error) {
	challenge, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Points < challenge.PointsRequired {
		return nil, ErrChallengeLocked
	}

	proof := &model.ProofSubmission{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		ChallengeID: challenge.ID,
		ProofData:   proofData,
	}
	updated, earned, err := s.proofRepo.SubmitApproved(ctx, proof, challenge.PointsReward, progression.AwardContext{
		ChallengeBadge: challenge.Badge,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	s.notifications.Notify(ctx, user.ID, model.NotificationTypeAchievement,
		fmt.Sprintf("Challenge completed! You earned %d points!", challenge.PointsReward))

	out := &SubmitProofResult{
		PointsEarned: challenge.PointsReward,
		NewLevel:     updated.Level,
	}
	for _, b := range earned {
		if b == challenge.Badge {
			out.BadgeEarned = b
		}
	}
	return out, nil
}

// SampleChallenges is the fixed challenge catalog used both by lazy seeding
// and by cmd/seed. Unlock thresholds step from 0 to 300 points.
func SampleChallenges() []model.Challenge {
	return []model.Challenge{
		{
			ID:             uuid.NewString(),
			Title:          "Plastic-Free Day",
			Description:    "Go one full day without using any single-use plastic. Take a photo of your reusable items!",
			PointsRequired: 0,
			PointsReward:   50,
			Badge:          "Plastic Warrior",
			Category:       "waste_reduction",
		},
		{
			ID:             uuid.NewString(),
			Title:          "Plant a Tree",
			Description:    "Plant a tree or start a small garden. Upload a photo of your plant!",
			PointsRequired: 50,
			PointsReward:   100,
			Badge:          "Green Thumb",
			Category:       "nature",
		},
		{
			ID:             uuid.NewString(),
			Title:          "Energy Audit",
			Description:    "Conduct a home energy audit. Identify 5 ways to save energy and take before/after photos.",
			PointsRequired: 100,
			PointsReward:   75,
			Badge:          "Energy Detective",
			Category:       "energy",
		},
		{
			ID:             uuid.NewString(),
			Title:          "Public Transport Week",
			Description:    "Use only public transportation, cycling, or walking for one week. Document your journey!",
			PointsRequired: 150,
			PointsReward:   150,
			Badge:          "Eco Commuter",
			Category:       "transportation",
		},
		{
			ID:             uuid.NewString(),
			Title:          "Zero Waste Meal",
			Description:    "Prepare a meal producing zero waste. Show us your creative packaging solutions!",
			PointsRequired: 200,
			PointsReward:   100,
			Badge:          "Waste Warrior",
			Category:       "waste_reduction",
		},
		{
			ID:             uuid.NewString(),
			Title:          "Beach/Park Cleanup",
			Description:    "Organize or participate in a local cleanup. Upload photos of the cleanup in action!",
			PointsRequired: 300,
			PointsReward:   200,
			Badge:          "Cleanup Champion",
			Category:       "community",
		},
	}
}
