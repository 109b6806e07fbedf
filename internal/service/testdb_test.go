package service

import (
	"context"
	"testing"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A pooled :memory: connection is a fresh empty database; pin to one.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.GameProgress{},
		&model.QuizQuestion{},
		&model.Challenge{},
		&model.ProofSubmission{},
		&model.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, points int) *model.User {
	t.Helper()
	u := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Points:       points,
		Level:        points/100 + 1,
		Badges:       model.StringList{},
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

func reloadUser(t *testing.T, db *gorm.DB, id string) *model.User {
	t.Helper()
	u, err := repository.NewUserRepository(db).FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	return u
}
