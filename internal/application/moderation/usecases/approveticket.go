package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/goroutine"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type ApproveTicketCommand struct {
	TicketID uint
}

type ApproveTicketResult struct {
	TicketID uint
	Status   string
	// Applied is false when the ticket was already terminal and the call
	// was an idempotent no-op.
	Applied bool
}

// ApproveTicketUseCase promotes a pending mutation: the ticket is marked
// accepted first, then the dependent content rows are finalized, all
// inside one transaction.
type ApproveTicketUseCase struct {
	tickets  moderation.TicketRepository
	stores   appmod.StoreRegistry
	txMgr    appmod.TxManager
	notifier appmod.Notifier
	logger   logger.Interface
}

func NewApproveTicketUseCase(
	tickets moderation.TicketRepository,
	stores appmod.StoreRegistry,
	txMgr appmod.TxManager,
	notifier appmod.Notifier,
	logger logger.Interface,
) *ApproveTicketUseCase {
	return &ApproveTicketUseCase{
		tickets:  tickets,
		stores:   stores,
		txMgr:    txMgr,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ApproveTicketUseCase) Execute(ctx context.Context, cmd ApproveTicketCommand) (*ApproveTicketResult, error) {
	ticket, err := uc.tickets.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if ticket.Status().IsTerminal() {
		return &ApproveTicketResult{
			TicketID: ticket.ID(),
			Status:   ticket.Status().String(),
			Applied:  false,
		}, nil
	}

	var title string

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := ticket.Approve(); err != nil {
			return appErrors.NewConflictError(err.Error())
		}
		if err := uc.tickets.Resolve(txCtx, ticket); err != nil {
			return err
		}

		item, err := uc.applyApproval(txCtx, ticket)
		if err != nil {
			return err
		}
		if item != nil {
			title = item.Title()
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("approve failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	uc.notify(appmod.NotificationEvent{
		Cause:    appmod.NotificationCauseApproved,
		TicketID: ticket.ID(),
		ItemType: ticket.ItemType(),
		Title:    title,
	})

	uc.logger.Infow("ticket approved", "ticket_id", ticket.ID(), "item_type", ticket.ItemType(), "operation", ticket.Operation())

	return &ApproveTicketResult{
		TicketID: ticket.ID(),
		Status:   ticket.Status().String(),
		Applied:  true,
	}, nil
}

func (uc *ApproveTicketUseCase) applyApproval(ctx context.Context, ticket *moderation.Ticket) (content.Item, error) {
	if !ticket.ItemType().IsContent() {
		return nil, nil
	}

	store, ok := uc.stores.Lookup(ticket.ItemType())
	if !ok {
		return nil, appErrors.NewInternalError("no content store for item type " + ticket.ItemType().String())
	}

	switch {
	case ticket.Operation().IsCreate():
		item, err := store.FindByID(ctx, ticket.OriginalID())
		if err != nil {
			return nil, err
		}
		// A competing staged create may have been approved since this one
		// was submitted; the natural key is only checked against visible
		// rows, so recheck before publishing.
		if err := store.CheckPublishable(ctx, item, 0); err != nil {
			return nil, err
		}
		if err := store.SetVisible(ctx, ticket.OriginalID(), true); err != nil {
			return nil, appErrors.NewDependencyError("failed to publish item", err)
		}
		return item, nil

	case ticket.Operation().IsUpdate():
		modifiedID := ticket.ModifiedID()
		if modifiedID == nil {
			return nil, appErrors.NewInternalError("update ticket has no shadow reference")
		}
		item, err := store.FindByID(ctx, *modifiedID)
		if err != nil {
			return nil, err
		}
		// The superseded original is about to be removed, so it is
		// excluded from the collision check.
		if err := store.CheckPublishable(ctx, item, ticket.OriginalID()); err != nil {
			return nil, err
		}
		if err := store.SetVisible(ctx, *modifiedID, true); err != nil {
			return nil, appErrors.NewDependencyError("failed to publish shadow item", err)
		}
		if err := store.Delete(ctx, ticket.OriginalID()); err != nil {
			return nil, appErrors.NewDependencyError("failed to remove superseded item", err)
		}
		return item, nil

	default:
		item, err := store.FindByID(ctx, ticket.OriginalID())
		if err != nil {
			return nil, err
		}
		if err := store.Delete(ctx, ticket.OriginalID()); err != nil {
			return nil, appErrors.NewDependencyError("failed to delete item", err)
		}
		return item, nil
	}
}

func (uc *ApproveTicketUseCase) notify(event appmod.NotificationEvent) {
	if uc.notifier == nil {
		return
	}
	goroutine.SafeGo(uc.logger, "approve-notifier", func() {
		if err := uc.notifier.Notify(context.Background(), event); err != nil {
			uc.logger.Warnw("notification delivery failed", "ticket_id", event.TicketID, "error", err)
		}
	})
}
