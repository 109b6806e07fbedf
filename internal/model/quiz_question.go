package model

type QuizQuestion struct {
	ID            string     `gorm:"primaryKey;size:36"`
	Question      string     `gorm:"size:512;not null;uniqueIndex:uk_quiz_questions_question"`
	Options       StringList `gorm:"type:text;not null"`
	CorrectAnswer int        `gorm:"column:correct_answer;not null"`
	Category      string     `gorm:"size:64;index;not null"`
	Difficulty    int        `gorm:"not null;default:1"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
