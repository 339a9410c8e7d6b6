package dto

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
)

// TicketDTO is the transport shape of a ticket.
type TicketDTO struct {
	ID         uint      `json:"id"`
	ItemType   string    `json:"item_type"`
	Operation  string    `json:"operation"`
	Status     string    `json:"status"`
	OriginalID uint      `json:"original_id"`
	ModifiedID *uint     `json:"modified_id,omitempty"`
	OtherID    *uint     `json:"other_id,omitempty"`
	CommentID  uint      `json:"comment_id"`
	CreatedBy  uint      `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ContentSummaryDTO is a resolved reference to a content row on a ticket.
type ContentSummaryDTO struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
}

// TicketDetailDTO is a ticket with its comment and content references
// resolved for the review screen.
type TicketDetailDTO struct {
	TicketDTO
	CommentBody string             `json:"comment_body"`
	Original    *ContentSummaryDTO `json:"original,omitempty"`
	Modified    *ContentSummaryDTO `json:"modified,omitempty"`
}

func FromTicket(t *moderation.Ticket) TicketDTO {
	return TicketDTO{
		ID:         t.ID(),
		ItemType:   t.ItemType().String(),
		Operation:  t.Operation().String(),
		Status:     t.Status().String(),
		OriginalID: t.OriginalID(),
		ModifiedID: t.ModifiedID(),
		OtherID:    t.OtherID(),
		CommentID:  t.CommentID(),
		CreatedBy:  t.CreatedBy(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func FromTickets(tickets []*moderation.Ticket) []TicketDTO {
	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, FromTicket(t))
	}
	return dtos
}
