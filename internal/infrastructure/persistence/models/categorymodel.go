package models

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
)

type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100;uniqueIndex:uniq_category_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
