package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
)

type ApproveTicketExecutor interface {
	Execute(ctx context.Context, cmd ApproveTicketCommand) (*ApproveTicketResult, error)
}

type RejectTicketExecutor interface {
	Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListPendingTicketsExecutor interface {
	Execute(ctx context.Context, query ListPendingTicketsQuery) (*ListPendingTicketsResult, error)
}

type HasPendingTicketExecutor interface {
	Execute(ctx context.Context, query HasPendingTicketQuery) (*HasPendingTicketResult, error)
}
