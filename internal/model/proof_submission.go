package model

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// ProofSubmission holds user-supplied evidence for a challenge. The unique
// index on (user_id, challenge_id) enforces at most one submission per pair.
type ProofSubmission struct {
	ID          string           `gorm:"primaryKey;size:36"`
	UserID      string           `gorm:"column:user_id;size:36;uniqueIndex:uk_submissions_user_challenge;not null"`
	ChallengeID string           `gorm:"column:challenge_id;size:36;uniqueIndex:uk_submissions_user_challenge;not null"`
	ProofData   string           `gorm:"column:proof_data;type:longtext"`
	Status      SubmissionStatus `gorm:"size:32;not null;default:pending"`
	SubmittedAt time.Time        `gorm:"column:submitted_at;autoCreateTime"`
}

func (ProofSubmission) TableName() string {
	return "proof_submissions"
}
