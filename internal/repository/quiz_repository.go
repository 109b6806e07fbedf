package repository

import (
	"context"
	"errors"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	List(ctx context.Context, category string, limit int) ([]model.QuizQuestion, error)
	FindByID(ctx context.Context, id string) (*model.QuizQuestion, error)
	EnsureSeeded(ctx context.Context, samples []model.QuizQuestion) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) List(ctx context.Context, category string, limit int) ([]model.QuizQuestion, error) {
	if limit <= 0 {
		limit = 10
	}
	q := r.db.WithContext(ctx).Model(&model.QuizQuestion{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var questions []model.QuizQuestion
	if err := q.Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) FindByID(ctx context.Context, id string) (*model.QuizQuestion, error) {
	var q model.QuizQuestion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// EnsureSeeded inserts the sample set only when the table is empty. The
// emptiness check alone cannot stop two concurrent first reads from both
// inserting, so the question text carries a unique index: the losing insert
// rolls back and counts as already seeded.
func (r *quizRepository) EnsureSeeded(ctx context.Context, samples []model.QuizQuestion) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.QuizQuestion{}).Count(&count).Error; err != nil {
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
