package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/goroutine"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type RejectTicketCommand struct {
	TicketID uint
}

type RejectTicketResult struct {
	TicketID uint
	Status   string
	Applied  bool
}

// RejectTicketUseCase discards a pending mutation. Staged drafts are
// deleted; live rows are never touched on rejection.
type RejectTicketUseCase struct {
	tickets  moderation.TicketRepository
	comments moderation.CommentRepository
	stores   appmod.StoreRegistry
	txMgr    appmod.TxManager
	notifier appmod.Notifier
	logger   logger.Interface
}

func NewRejectTicketUseCase(
	tickets moderation.TicketRepository,
	comments moderation.CommentRepository,
	stores appmod.StoreRegistry,
	txMgr appmod.TxManager,
	notifier appmod.Notifier,
	logger logger.Interface,
) *RejectTicketUseCase {
	return &RejectTicketUseCase{
		tickets:  tickets,
		comments: comments,
		stores:   stores,
		txMgr:    txMgr,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RejectTicketUseCase) Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error) {
	ticket, err := uc.tickets.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if ticket.Status().IsTerminal() {
		return &RejectTicketResult{
			TicketID: ticket.ID(),
			Status:   ticket.Status().String(),
			Applied:  false,
		}, nil
	}

	var title string

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := ticket.Reject(); err != nil {
			return appErrors.NewConflictError(err.Error())
		}
		if err := uc.tickets.Resolve(txCtx, ticket); err != nil {
			return err
		}

		itemTitle, err := uc.discardStaged(txCtx, ticket)
		if err != nil {
			return err
		}
		title = itemTitle
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("reject failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	uc.notify(appmod.NotificationEvent{
		Cause:    appmod.NotificationCauseRejected,
		TicketID: ticket.ID(),
		ItemType: ticket.ItemType(),
		Title:    title,
	})

	uc.logger.Infow("ticket rejected", "ticket_id", ticket.ID(), "item_type", ticket.ItemType(), "operation", ticket.Operation())

	return &RejectTicketResult{
		TicketID: ticket.ID(),
		Status:   ticket.Status().String(),
		Applied:  true,
	}, nil
}

func (uc *RejectTicketUseCase) discardStaged(ctx context.Context, ticket *moderation.Ticket) (string, error) {
	if !ticket.ItemType().IsContent() {
		return "", nil
	}

	store, ok := uc.stores.Lookup(ticket.ItemType())
	if !ok {
		return "", appErrors.NewInternalError("no content store for item type " + ticket.ItemType().String())
	}

	switch {
	case ticket.Operation().IsCreate():
		item, err := store.FindByID(ctx, ticket.OriginalID())
		if err != nil {
			return "", err
		}
		if err := store.Delete(ctx, ticket.OriginalID()); err != nil {
			return "", appErrors.NewDependencyError("failed to delete staged item", err)
		}
		if err := uc.cleanupOrphanedComment(ctx, ticket); err != nil {
			return "", err
		}
		return item.Title(), nil

	case ticket.Operation().IsUpdate():
		modifiedID := ticket.ModifiedID()
		if modifiedID == nil {
			return "", appErrors.NewInternalError("update ticket has no shadow reference")
		}
		item, err := store.FindByID(ctx, *modifiedID)
		if err != nil {
			return "", err
		}
		if err := store.Delete(ctx, *modifiedID); err != nil {
			return "", appErrors.NewDependencyError("failed to delete shadow item", err)
		}
		return item.Title(), nil

	default:
		// A rejected delete never touched the item.
		return "", nil
	}
}

// cleanupOrphanedComment removes the audit comment of a rejected staged
// create when no other ticket shares it. The ticket row keeps its comment
// reference as a dangling audit value; the column carries no foreign key.
func (uc *RejectTicketUseCase) cleanupOrphanedComment(ctx context.Context, ticket *moderation.Ticket) error {
	count, err := uc.tickets.CountByCommentID(ctx, ticket.CommentID())
	if err != nil {
		return appErrors.NewDependencyError("failed to count comment references", err)
	}
	if count > 1 {
		return nil
	}
	if err := uc.comments.Delete(ctx, ticket.CommentID()); err != nil {
		return appErrors.NewDependencyError("failed to delete orphaned comment", err)
	}
	return nil
}

func (uc *RejectTicketUseCase) notify(event appmod.NotificationEvent) {
	if uc.notifier == nil {
		return
	}
	goroutine.SafeGo(uc.logger, "reject-notifier", func() {
		if err := uc.notifier.Notify(context.Background(), event); err != nil {
			uc.logger.Warnw("notification delivery failed", "ticket_id", event.TicketID, "error", err)
		}
	})
}
