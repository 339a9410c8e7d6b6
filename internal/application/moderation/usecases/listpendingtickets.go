package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type ListPendingTicketsQuery struct {
	ItemType *string
	Page     int
	PageSize int
}

type ListPendingTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

// ListPendingTicketsUseCase returns the review queue, oldest first.
type ListPendingTicketsUseCase struct {
	tickets moderation.TicketRepository
}

func NewListPendingTicketsUseCase(tickets moderation.TicketRepository) *ListPendingTicketsUseCase {
	return &ListPendingTicketsUseCase{tickets: tickets}
}

func (uc *ListPendingTicketsUseCase) Execute(ctx context.Context, query ListPendingTicketsQuery) (*ListPendingTicketsResult, error) {
	filter := moderation.TicketFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.ItemType != nil {
		itemType, err := vo.NewItemType(*query.ItemType)
		if err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
		filter.ItemType = &itemType
	}

	tickets, total, err := uc.tickets.ListPending(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListPendingTicketsResult{
		Tickets: dto.FromTickets(tickets),
		Total:   total,
	}, nil
}
