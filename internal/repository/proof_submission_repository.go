package repository

import (
	"context"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/progression"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProofSubmissionRepository interface {
	SubmitApproved(ctx context.Context, sub *model.ProofSubmission, reward int, award progression.AwardContext) (*model.User, []string, error)
	ListByUser(ctx context.Context, userID string) ([]model.ProofSubmission, error)
}

type proofSubmissionRepository struct {
	db *gorm.DB
}

func NewProofSubmissionRepository(db *gorm.DB) ProofSubmissionRepository {
	return &proofSubmissionRepository{db: db}
}

// SubmitApproved records a proof submission, approves it, and applies the
// reward to the user, all in one transaction: a failure at any step leaves no
// row behind, so the caller can retry. The insert relies on the
// (user_id, challenge_id) unique index, so a duplicate submission surfaces as
// gorm.ErrDuplicatedKey rather than being screened by a separate existence
// check.
func (r *proofSubmissionRepository) SubmitApproved(ctx context.Context, sub *model.ProofSubmission, reward int, award progression.AwardContext) (*model.User, []string, error) {
	var (
		user   *model.User
		earned []string
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if sub.ID == "" {
			sub.ID = uuid.NewString()
		}
		sub.Status = model.SubmissionStatusPending
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		// No manual review step: submissions are approved on the spot.
		if err := tx.Model(&model.ProofSubmission{}).
			Where("id = ?", sub.ID).
			Update("status", model.SubmissionStatusApproved).Error; err != nil {
			return err
		}
		sub.Status = model.SubmissionStatusApproved

		u, e, err := applyProgress(ctx, tx, sub.UserID, reward, award)
		if err != nil {
			return err
		}
		user, earned = u, e
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, earned, nil
}

func (r *proofSubmissionRepository) ListByUser(ctx context.Context, userID string) ([]model.ProofSubmission, error) {
	var subs []model.ProofSubmission
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
