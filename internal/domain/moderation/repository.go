package moderation

import (
	"context"

	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// Resolve persists a pending-to-terminal transition. The write is
	// guarded on the row still being pending; a conflict error is returned
	// when a concurrent caller already resolved the ticket.
	Resolve(ctx context.Context, t *Ticket) error
	ListPending(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	HasPending(ctx context.Context, itemType vo.ItemType, originalID uint) (bool, error)
	CountByCommentID(ctx context.Context, commentID uint) (int64, error)
}

type TicketFilter struct {
	ItemType *vo.ItemType
	Page     int
	PageSize int
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	FindByBody(ctx context.Context, body string) (*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}
