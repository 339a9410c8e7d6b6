package models

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
)

type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"not null;size:255;uniqueIndex:uniq_user_email"`
	PasswordHash string `gorm:"not null;size:100"`
	Role         string `gorm:"not null;size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
