package model

// Challenge is static catalog data: seeded once, never mutated per user.
type Challenge struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	Title          string `gorm:"size:255;not null;uniqueIndex:uk_challenges_title" json:"title"`
	Description    string `gorm:"type:text;not null" json:"description"`
	PointsRequired int    `gorm:"column:points_required;not null" json:"points_required"`
	PointsReward   int    `gorm:"column:points_reward;not null" json:"points_reward"`
	Badge          string `gorm:"size:120" json:"badge,omitempty"`
	Category       string `gorm:"size:64;not null" json:"category"`
}

func (Challenge) TableName() string {
	return "challenges"
}
