package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type HasPendingTicketQuery struct {
	ItemType string
	ItemID   uint
}

type HasPendingTicketResult struct {
	Pending bool
}

// HasPendingTicketUseCase reports whether an item already awaits review,
// letting content surfaces block a second competing submission.
type HasPendingTicketUseCase struct {
	tickets moderation.TicketRepository
}

func NewHasPendingTicketUseCase(tickets moderation.TicketRepository) *HasPendingTicketUseCase {
	return &HasPendingTicketUseCase{tickets: tickets}
}

func (uc *HasPendingTicketUseCase) Execute(ctx context.Context, query HasPendingTicketQuery) (*HasPendingTicketResult, error) {
	itemType, err := vo.NewItemType(query.ItemType)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}
	if query.ItemID == 0 {
		return nil, appErrors.NewValidationError("item ID is required")
	}

	pending, err := uc.tickets.HasPending(ctx, itemType, query.ItemID)
	if err != nil {
		return nil, err
	}

	return &HasPendingTicketResult{Pending: pending}, nil
}
