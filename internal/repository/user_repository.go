package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/progression"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyRetries bounds the optimistic-concurrency retry loop in applyProgress.
const applyRetries = 3

var errStaleRead = errors.New("stale read")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	TopByPoints(ctx context.Context, limit int) ([]model.User, error)
	ApplyProgress(ctx context.Context, userID string, delta int, award progression.AwardContext) (*model.User, []string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Badges == nil {
		user.Badges = model.StringList{}
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) TopByPoints(ctx context.Context, limit int) ([]model.User, error) {
	if limit <= 0 {
		limit = 10
	}
	var users []model.User
	if err := r.db.WithContext(ctx).
		Order("points DESC, created_at ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ApplyProgress applies a point delta and the badge rules to a user as one
// atomic write. See applyProgress.
func (r *userRepository) ApplyProgress(ctx context.Context, userID string, delta int, award progression.AwardContext) (*model.User, []string, error) {
	return applyProgress(ctx, r.db, userID, delta, award)
}

// applyProgress recomputes points, level and badges from the row read at the
// start of the transaction and writes them in one UPDATE guarded by the values
// it read, so a concurrent award retries instead of losing an update or
// duplicating a badge. Achievement notifications for newly earned badges are
// created in the same transaction. db may itself be a transaction; each
// attempt then runs in a savepoint.
func applyProgress(ctx context.Context, db *gorm.DB, userID string, delta int, award progression.AwardContext) (*model.User, []string, error) {
	if delta < 0 {
		return nil, nil, errors.New("delta must be non-negative")
	}
	for i := 0; i < applyRetries; i++ {
		user, earned, err := applyProgressOnce(ctx, db, userID, delta, award)
		if errors.Is(err, errStaleRead) {
			continue
		}
		return user, earned, err
	}
	return nil, nil, errors.New("progress update contention")
}

func applyProgressOnce(ctx context.Context, db *gorm.DB, userID string, delta int, award progression.AwardContext) (*model.User, []string, error) {
	var (
		updated model.User
		earned  []string
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.User
		if err := tx.Where("id = ?", userID).First(&u).Error; err != nil {
			return err
		}

		newPoints := u.Points + delta
		newLevel := progression.LevelForPoints(newPoints)
		earned = progression.NewlyEarned(award, u.Badges)

		badges := append(model.StringList{}, u.Badges...)
		badges = append(badges, earned...)

		// Guard on badges as well as points: a zero-delta badge award
		// changes nothing but the badge list.
		res := tx.Model(&model.User{}).
			Where("id = ? AND points = ? AND badges = ?", u.ID, u.Points, u.Badges).
			Updates(map[string]interface{}{
				"points": newPoints,
				"level":  newLevel,
				"badges": badges,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleRead
		}

		for _, badge := range earned {
			n := &model.Notification{
				ID:      uuid.NewString(),
				UserID:  u.ID,
				Message: fmt.Sprintf("Congratulations! You earned a new badge: %s", badge),
				Type:    model.NotificationTypeAchievement,
			}
			if err := tx.Create(n).Error; err != nil {
				return err
			}
		}

		updated = u
		updated.Points = newPoints
		updated.Level = newLevel
		updated.Badges = badges
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &updated, earned, nil
}
