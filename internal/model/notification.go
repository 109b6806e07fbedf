package model

import "time"

const (
	NotificationTypeAchievement     = "achievement"
	NotificationTypeChallengeUnlock = "challenge_unlock"
	NotificationTypeReminder        = "reminder"
)

type Notification struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"column:user_id;size:36;index;not null"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"size:64;not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
