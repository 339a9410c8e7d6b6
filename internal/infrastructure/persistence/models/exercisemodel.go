package models

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
)

// ExerciseModel carries no unique index on (title, category_id): shadow
// drafts may duplicate the live row's natural key while a review is open.
// The natural-key check lives in the repository query instead.
type ExerciseModel struct {
	ID            uint     `gorm:"primarykey"`
	Title         string   `gorm:"not null;size:200;index:idx_exercise_title"`
	Statement     string   `gorm:"not null;type:text"`
	CategoryID    uint     `gorm:"not null;index:idx_exercise_category"`
	Difficulty    string   `gorm:"not null;size:10;index:idx_exercise_difficulty"`
	TimeLimitMS   int      `gorm:"not null"`
	MemoryLimitKB int      `gorm:"not null"`
	Tags          []string `gorm:"serializer:json;type:text"`
	Visible       bool     `gorm:"not null;index:idx_exercise_visible"`
	CreatedBy     uint     `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ExerciseModel) TableName() string {
	return constants.TableExercises
}
