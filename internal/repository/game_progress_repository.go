package repository

import (
	"context"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameProgressRepository interface {
	Create(ctx context.Context, progress *model.GameProgress) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.GameProgress, error)
}

type gameProgressRepository struct {
	db *gorm.DB
}

func NewGameProgressRepository(db *gorm.DB) GameProgressRepository {
	return &gameProgressRepository{db: db}
}

func (r *gameProgressRepository) Create(ctx context.Context, progress *model.GameProgress) error {
	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *gameProgressRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.GameProgress, error) {
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	var list []model.GameProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
