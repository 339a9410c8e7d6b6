package models

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
)

// TicketModel is the persistence shape of a moderation ticket.
//
// PendingKey mirrors OriginalID while the ticket is pending and is NULL
// once resolved. The composite unique index on (item_type, pending_key)
// enforces at most one pending ticket per item without a partial index,
// which MySQL lacks; NULL values never collide.
type TicketModel struct {
	ID         uint   `gorm:"primarykey"`
	ItemType   string `gorm:"not null;size:20;uniqueIndex:uniq_pending_item,priority:1"`
	Operation  string `gorm:"not null;size:20"`
	Status     string `gorm:"not null;size:20;index:idx_ticket_status"`
	OriginalID uint   `gorm:"not null;index:idx_ticket_original"`
	ModifiedID *uint
	OtherID    *uint
	CommentID  uint  `gorm:"not null"`
	CreatedBy  uint  `gorm:"not null"`
	PendingKey *uint `gorm:"uniqueIndex:uniq_pending_item,priority:2"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
