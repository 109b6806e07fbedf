package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/progression"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"gorm.io/gorm"
)

func newGameService(db *gorm.DB) GameService {
	userRepo := repository.NewUserRepository(db)
	return NewGameService(
		repository.NewGameProgressRepository(db),
		NewProgressionService(userRepo),
	)
}

func TestSaveProgressAwardsScore(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice", 60)

	result, err := svc.SaveProgress(ctx, user.ID, SaveProgressInput{
		GameType:  model.GameTypeQuiz,
		Level:     1,
		Score:     55,
		Completed: true,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if result.PointsEarned != 55 {
		t.Fatalf("points earned %d, want 55", result.PointsEarned)
	}
	if result.NewLevel != 2 {
		t.Fatalf("new level %d, want 2", result.NewLevel)
	}

	stored := reloadUser(t, db, user.ID)
	if stored.Points != 115 || stored.Level != 2 {
		t.Fatalf("stored points=%d level=%d, want 115/2", stored.Points, stored.Level)
	}

	history, err := svc.History(ctx, user.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 progress row, got %d", len(history))
	}
	if history[0].CompletedAt == nil {
		t.Fatal("completed session missing completion timestamp")
	}
}

func TestSaveProgressIncompleteSession(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(db)
	user := createTestUser(t, db, "bob", 0)

	_, err := svc.SaveProgress(context.Background(), user.ID, SaveProgressInput{
		GameType: model.GameTypeWasteSorting,
		Level:    2,
		Score:    30,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	history, err := svc.History(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if history[0].CompletedAt != nil {
		t.Fatal("incomplete session has completion timestamp")
	}
}

func TestSaveProgressQuizMasterBadge(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(db)
	user := createTestUser(t, db, "carol", 0)

	result, err := svc.SaveProgress(context.Background(), user.ID, SaveProgressInput{
		GameType:  model.GameTypeQuiz,
		Level:     1,
		Score:     80,
		Completed: true,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(result.NewBadges) != 1 || result.NewBadges[0] != progression.BadgeQuizMaster {
		t.Fatalf("expected Quiz Master, got %v", result.NewBadges)
	}
}

func TestSaveProgressSortingChampionBadge(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(db)
	user := createTestUser(t, db, "dave", 0)

	result, err := svc.SaveProgress(context.Background(), user.ID, SaveProgressInput{
		GameType:  model.GameTypeWasteSorting,
		Level:     5,
		Score:     40,
		Completed: true,
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(result.NewBadges) != 1 || result.NewBadges[0] != progression.BadgeSortingChampion {
		t.Fatalf("expected Sorting Champion, got %v", result.NewBadges)
	}
}

func TestSaveProgressRejectsUnknownGameType(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(db)
	user := createTestUser(t, db, "erin", 0)

	_, err := svc.SaveProgress(context.Background(), user.ID, SaveProgressInput{
		GameType: "poker",
		Score:    10,
	})
	if !errors.Is(err, ErrInvalidGameType) {
		t.Fatalf("expected ErrInvalidGameType, got %v", err)
	}
}
