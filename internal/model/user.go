package model

import "time"

type User struct {
	ID           string     `gorm:"primaryKey;size:36"`
	Username     string     `gorm:"size:120;not null;uniqueIndex:uk_users_username"`
	Email        string     `gorm:"size:255;not null;uniqueIndex:uk_users_email"`
	PasswordHash string     `gorm:"column:password_hash;size:255;not null"`
	Points       int        `gorm:"not null;default:0"`
	Level        int        `gorm:"not null;default:1"`
	Badges       StringList `gorm:"type:text;not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
