package model

import "time"

type GameType string

const (
	GameTypeQuiz         GameType = "quiz"
	GameTypeWasteSorting GameType = "waste_sorting"
	GameTypeEnergySaving GameType = "energy_saving"
)

// GameProgress is an append-only record of one game session outcome.
type GameProgress struct {
	ID          string     `gorm:"primaryKey;size:36"`
	UserID      string     `gorm:"column:user_id;size:36;index;not null"`
	GameType    GameType   `gorm:"column:game_type;size:32;not null"`
	Level       int        `gorm:"not null"`
	Score       int        `gorm:"not null"`
	Completed   bool       `gorm:"not null;default:false"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (GameProgress) TableName() string {
	return "game_progress"
}
