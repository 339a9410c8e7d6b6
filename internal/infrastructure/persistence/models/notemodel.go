package models

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
)

type NoteModel struct {
	ID         uint   `gorm:"primarykey"`
	Title      string `gorm:"not null;size:200"`
	Body       string `gorm:"not null;type:text"`
	CategoryID uint   `gorm:"not null;index:idx_note_category"`
	Visible    bool   `gorm:"not null;index:idx_note_visible"`
	CreatedBy  uint   `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (NoteModel) TableName() string {
	return constants.TableNotes
}
