package moderation

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/goroutine"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

// SubmitCommand carries one content mutation request into the engine.
// Item holds the draft entity for create and update operations and is nil
// for delete. OriginalID names the live row targeted by update and delete.
type SubmitCommand struct {
	ItemType    vo.ItemType
	Operation   vo.Operation
	Privileged  bool
	ActorID     uint
	CommentBody string
	Item        content.Item
	OriginalID  uint
}

// RecordAcceptedCommand records an auto-accepted ticket for reference-data
// and account changes that never go through review. It runs on the
// caller's context so it can join an enclosing transaction.
type RecordAcceptedCommand struct {
	ItemType    vo.ItemType
	Operation   vo.Operation
	OriginalID  uint
	OtherID     *uint
	CommentBody string
	ActorID     uint
}

// Engine stages or applies content mutations and always returns a ticket.
// Privileged actors mutate immediately under an accepted ticket;
// unprivileged actors get an invisible draft tracked by a pending ticket.
type Engine struct {
	tickets  moderation.TicketRepository
	comments moderation.CommentRepository
	stores   StoreRegistry
	txMgr    TxManager
	notifier Notifier
	logger   logger.Interface
}

func NewEngine(
	tickets moderation.TicketRepository,
	comments moderation.CommentRepository,
	stores StoreRegistry,
	txMgr TxManager,
	notifier Notifier,
	logger logger.Interface,
) *Engine {
	return &Engine{
		tickets:  tickets,
		comments: comments,
		stores:   stores,
		txMgr:    txMgr,
		notifier: notifier,
		logger:   logger,
	}
}

func (e *Engine) Submit(ctx context.Context, cmd SubmitCommand) (*moderation.Ticket, error) {
	if err := e.validateSubmit(cmd); err != nil {
		return nil, err
	}

	store, ok := e.stores.Lookup(cmd.ItemType)
	if !ok {
		return nil, appErrors.NewValidationError("no content store for item type " + cmd.ItemType.String())
	}

	var ticket *moderation.Ticket

	txErr := e.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		comment, err := moderation.NewComment(cmd.CommentBody)
		if err != nil {
			return appErrors.NewValidationError(err.Error())
		}
		if err := e.comments.Save(txCtx, comment); err != nil {
			return appErrors.NewDependencyError("failed to save comment", err)
		}

		switch {
		case cmd.Operation.IsCreate():
			ticket, err = e.submitCreate(txCtx, cmd, store, comment.ID())
		case cmd.Operation.IsUpdate():
			ticket, err = e.submitUpdate(txCtx, cmd, store, comment.ID())
		default:
			ticket, err = e.submitDelete(txCtx, cmd, store, comment.ID())
		}
		return err
	})
	if txErr != nil {
		e.logger.Errorw("submit failed",
			"item_type", cmd.ItemType,
			"operation", cmd.Operation,
			"actor_id", cmd.ActorID,
			"error", txErr,
		)
		return nil, txErr
	}

	if ticket.Status().IsPending() {
		e.dispatchNotification(NotificationEvent{
			Cause:    NotificationCauseSubmitted,
			TicketID: ticket.ID(),
			ItemType: ticket.ItemType(),
			Title:    itemTitle(cmd.Item),
		})
	}

	e.logger.Infow("mutation submitted",
		"ticket_id", ticket.ID(),
		"item_type", cmd.ItemType,
		"operation", cmd.Operation,
		"status", ticket.Status(),
	)

	return ticket, nil
}

func (e *Engine) submitCreate(ctx context.Context, cmd SubmitCommand, store ContentStore, commentID uint) (*moderation.Ticket, error) {
	if cmd.Privileged {
		cmd.Item.Publish()
	} else {
		cmd.Item.Hide()
	}

	if err := store.Insert(ctx, cmd.Item); err != nil {
		if appErrors.IsDuplicateError(err) {
			return nil, appErrors.NewConflictError("an item with this title already exists")
		}
		return nil, appErrors.NewDependencyError("failed to save item", err)
	}

	status := vo.StatusPending
	if cmd.Privileged {
		status = vo.StatusAccepted
	}

	return e.saveTicket(ctx, cmd, status, cmd.Item.ID(), nil, commentID)
}

func (e *Engine) submitUpdate(ctx context.Context, cmd SubmitCommand, store ContentStore, commentID uint) (*moderation.Ticket, error) {
	if _, err := store.FindByID(ctx, cmd.OriginalID); err != nil {
		return nil, err
	}

	if cmd.Privileged {
		cmd.Item.Publish()
		ticket, err := e.saveTicket(ctx, cmd, vo.StatusAccepted, cmd.OriginalID, nil, commentID)
		if err != nil {
			return nil, err
		}
		if err := store.Update(ctx, cmd.OriginalID, cmd.Item); err != nil {
			return nil, appErrors.NewDependencyError("failed to update item", err)
		}
		return ticket, nil
	}

	if err := e.guardNoPending(ctx, cmd.ItemType, cmd.OriginalID); err != nil {
		return nil, err
	}

	cmd.Item.Hide()
	if err := store.Insert(ctx, cmd.Item); err != nil {
		return nil, appErrors.NewDependencyError("failed to save shadow item", err)
	}

	shadowID := cmd.Item.ID()
	return e.saveTicket(ctx, cmd, vo.StatusPending, cmd.OriginalID, &shadowID, commentID)
}

func (e *Engine) submitDelete(ctx context.Context, cmd SubmitCommand, store ContentStore, commentID uint) (*moderation.Ticket, error) {
	if _, err := store.FindByID(ctx, cmd.OriginalID); err != nil {
		return nil, err
	}

	if cmd.Privileged {
		ticket, err := e.saveTicket(ctx, cmd, vo.StatusAccepted, cmd.OriginalID, nil, commentID)
		if err != nil {
			return nil, err
		}
		if err := store.Delete(ctx, cmd.OriginalID); err != nil {
			return nil, appErrors.NewDependencyError("failed to delete item", err)
		}
		return ticket, nil
	}

	if err := e.guardNoPending(ctx, cmd.ItemType, cmd.OriginalID); err != nil {
		return nil, err
	}

	return e.saveTicket(ctx, cmd, vo.StatusPending, cmd.OriginalID, nil, commentID)
}

// RecordAccepted persists a comment and an accepted ticket on the caller's
// context. Reference-data use cases invoke it from inside their own
// transaction so the audit record commits with the mutation it narrates.
func (e *Engine) RecordAccepted(ctx context.Context, cmd RecordAcceptedCommand) (*moderation.Ticket, error) {
	if !cmd.ItemType.AlwaysAccepts() {
		return nil, appErrors.NewValidationError("item type " + cmd.ItemType.String() + " requires review")
	}

	comment, err := moderation.NewComment(cmd.CommentBody)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}
	if err := e.comments.Save(ctx, comment); err != nil {
		return nil, appErrors.NewDependencyError("failed to save comment", err)
	}

	ticket, err := moderation.NewTicket(
		cmd.ItemType, cmd.Operation, vo.StatusAccepted,
		cmd.OriginalID, nil, cmd.OtherID, comment.ID(), cmd.ActorID,
	)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}
	if err := e.tickets.Save(ctx, ticket); err != nil {
		return nil, appErrors.NewDependencyError("failed to save ticket", err)
	}

	return ticket, nil
}

// HasPendingTicket reports whether the item already has an unresolved
// review, which blocks a second staged mutation against it.
func (e *Engine) HasPendingTicket(ctx context.Context, itemType vo.ItemType, itemID uint) (bool, error) {
	return e.tickets.HasPending(ctx, itemType, itemID)
}

func (e *Engine) validateSubmit(cmd SubmitCommand) error {
	if !cmd.ItemType.IsValid() || !cmd.ItemType.IsContent() {
		return appErrors.NewValidationError("invalid item type")
	}
	if !cmd.Operation.IsValid() {
		return appErrors.NewValidationError("invalid operation")
	}
	if cmd.ActorID == 0 {
		return appErrors.NewValidationError("actor ID is required")
	}
	if len(cmd.CommentBody) == 0 {
		return appErrors.NewValidationError("a comment describing the change is required")
	}
	if cmd.Operation.IsDelete() {
		if cmd.OriginalID == 0 {
			return appErrors.NewValidationError("target item ID is required")
		}
		return nil
	}
	if cmd.Item == nil {
		return appErrors.NewValidationError("item payload is required")
	}
	if cmd.Operation.IsUpdate() && cmd.OriginalID == 0 {
		return appErrors.NewValidationError("target item ID is required")
	}
	return nil
}

func (e *Engine) guardNoPending(ctx context.Context, itemType vo.ItemType, originalID uint) error {
	pending, err := e.tickets.HasPending(ctx, itemType, originalID)
	if err != nil {
		return appErrors.NewDependencyError("failed to check pending tickets", err)
	}
	if pending {
		return appErrors.NewConflictError("item already has a pending review")
	}
	return nil
}

func (e *Engine) saveTicket(
	ctx context.Context,
	cmd SubmitCommand,
	status vo.TicketStatus,
	originalID uint,
	modifiedID *uint,
	commentID uint,
) (*moderation.Ticket, error) {
	ticket, err := moderation.NewTicket(
		cmd.ItemType, cmd.Operation, status,
		originalID, modifiedID, nil, commentID, cmd.ActorID,
	)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := e.tickets.Save(ctx, ticket); err != nil {
		// The unique pending key rejects a second pending ticket for the
		// same item under concurrency.
		if appErrors.IsDuplicateError(err) {
			return nil, appErrors.NewConflictError("item already has a pending review")
		}
		return nil, appErrors.NewDependencyError("failed to save ticket", err)
	}

	return ticket, nil
}

func (e *Engine) dispatchNotification(event NotificationEvent) {
	if e.notifier == nil {
		return
	}
	goroutine.SafeGo(e.logger, "moderation-notifier", func() {
		if err := e.notifier.Notify(context.Background(), event); err != nil {
			e.logger.Warnw("notification delivery failed",
				"cause", event.Cause,
				"ticket_id", event.TicketID,
				"error", err,
			)
		}
	})
}

func itemTitle(item content.Item) string {
	if item == nil {
		return ""
	}
	return item.Title()
}
