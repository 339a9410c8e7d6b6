package models

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
)

type NewsModel struct {
	ID        uint   `gorm:"primarykey"`
	Title     string `gorm:"not null;size:200"`
	Body      string `gorm:"not null;type:text"`
	ImageURL  string `gorm:"size:500"`
	Visible   bool   `gorm:"not null;index:idx_news_visible"`
	CreatedBy uint   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NewsModel) TableName() string {
	return constants.TableNews
}
