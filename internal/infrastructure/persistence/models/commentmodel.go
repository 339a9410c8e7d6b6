package models

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
)

type CommentModel struct {
	ID        uint   `gorm:"primarykey"`
	Body      string `gorm:"not null;size:2000"`
	CreatedAt time.Time
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
