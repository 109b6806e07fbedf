package repository

import (
	"context"
	"errors"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	List(ctx context.Context) ([]model.Challenge, error)
	FindByID(ctx context.Context, id string) (*model.Challenge, error)
	EnsureSeeded(ctx context.Context, samples []model.Challenge) error
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) List(ctx context.Context) ([]model.Challenge, error) {
	var challenges []model.Challenge
	if err := r.db.WithContext(ctx).
		Order("points_required ASC").
		Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) FindByID(ctx context.Context, id string) (*model.Challenge, error) {
	var c model.Challenge
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// EnsureSeeded inserts the sample catalog only when the table is empty. The
// unique title index makes a concurrent double-seed lose cleanly: the losing
// insert rolls back and counts as already seeded.
func (r *challengeRepository) EnsureSeeded(ctx context.Context, samples []model.Challenge) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Challenge{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(&samples).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
