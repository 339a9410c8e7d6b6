package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type GetTicketQuery struct {
	TicketID uint
}

// GetTicketUseCase loads one ticket with its comment and content
// references resolved for the review screen. Vanished references on a
// terminal ticket are tolerated; the rows may legitimately be gone.
type GetTicketUseCase struct {
	tickets  moderation.TicketRepository
	comments moderation.CommentRepository
	stores   appmod.StoreRegistry
}

func NewGetTicketUseCase(
	tickets moderation.TicketRepository,
	comments moderation.CommentRepository,
	stores appmod.StoreRegistry,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		tickets:  tickets,
		comments: comments,
		stores:   stores,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	ticket, err := uc.tickets.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	detail := &dto.TicketDetailDTO{
		TicketDTO: dto.FromTicket(ticket),
	}

	if comment, err := uc.comments.GetByID(ctx, ticket.CommentID()); err == nil {
		detail.CommentBody = comment.Body()
	} else if !appErrors.IsNotFoundError(err) {
		return nil, err
	}

	if !ticket.ItemType().IsContent() {
		return detail, nil
	}

	store, ok := uc.stores.Lookup(ticket.ItemType())
	if !ok {
		return detail, nil
	}

	detail.Original, err = uc.resolveRef(ctx, store, ticket.OriginalID())
	if err != nil {
		return nil, err
	}

	if modifiedID := ticket.ModifiedID(); modifiedID != nil {
		detail.Modified, err = uc.resolveRef(ctx, store, *modifiedID)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func (uc *GetTicketUseCase) resolveRef(ctx context.Context, store appmod.ContentStore, id uint) (*dto.ContentSummaryDTO, error) {
	item, err := store.FindByID(ctx, id)
	if err != nil {
		if appErrors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.ContentSummaryDTO{
		ID:      item.ID(),
		Title:   item.Title(),
		Visible: item.Visible(),
	}, nil
}
