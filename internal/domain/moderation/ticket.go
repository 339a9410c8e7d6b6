package moderation

import (
	"fmt"
	"time"

	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
)

// Ticket is the audit and approval record for one content mutation attempt.
// A ticket holds a reference to the live row it concerns (originalID), and,
// for staged updates, a reference to the invisible shadow row carrying the
// proposed edit (modifiedID).
type Ticket struct {
	id         uint
	itemType   vo.ItemType
	operation  vo.Operation
	status     vo.TicketStatus
	originalID uint
	modifiedID *uint
	otherID    *uint
	commentID  uint
	createdBy  uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTicket(
	itemType vo.ItemType,
	operation vo.Operation,
	status vo.TicketStatus,
	originalID uint,
	modifiedID *uint,
	otherID *uint,
	commentID uint,
	createdBy uint,
) (*Ticket, error) {
	if !itemType.IsValid() {
		return nil, fmt.Errorf("invalid item type")
	}
	if !operation.IsValid() {
		return nil, fmt.Errorf("invalid operation")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if status.IsRejected() {
		return nil, fmt.Errorf("a ticket cannot be created rejected")
	}
	if originalID == 0 {
		return nil, fmt.Errorf("original reference is required")
	}
	if commentID == 0 {
		return nil, fmt.Errorf("comment reference is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if itemType.AlwaysAccepts() && !status.IsAccepted() {
		return nil, fmt.Errorf("%s tickets must be created accepted", itemType)
	}

	if modifiedID != nil {
		if !operation.IsUpdate() {
			return nil, fmt.Errorf("modified reference is only valid for update tickets")
		}
		if *modifiedID == 0 {
			return nil, fmt.Errorf("modified reference cannot be zero")
		}
		if *modifiedID == originalID {
			return nil, fmt.Errorf("modified reference must be a distinct row from the original")
		}
	} else if operation.IsUpdate() && status.IsPending() {
		return nil, fmt.Errorf("a pending update ticket requires a modified reference")
	}

	now := time.Now()

	return &Ticket{
		itemType:   itemType,
		operation:  operation,
		status:     status,
		originalID: originalID,
		modifiedID: modifiedID,
		otherID:    otherID,
		commentID:  commentID,
		createdBy:  createdBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTicket(
	id uint,
	itemType vo.ItemType,
	operation vo.Operation,
	status vo.TicketStatus,
	originalID uint,
	modifiedID *uint,
	otherID *uint,
	commentID uint,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !itemType.IsValid() {
		return nil, fmt.Errorf("invalid item type")
	}
	if !operation.IsValid() {
		return nil, fmt.Errorf("invalid operation")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:         id,
		itemType:   itemType,
		operation:  operation,
		status:     status,
		originalID: originalID,
		modifiedID: modifiedID,
		otherID:    otherID,
		commentID:  commentID,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ItemType() vo.ItemType {
	return t.itemType
}

func (t *Ticket) Operation() vo.Operation {
	return t.operation
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) OriginalID() uint {
	return t.originalID
}

func (t *Ticket) ModifiedID() *uint {
	return t.modifiedID
}

func (t *Ticket) OtherID() *uint {
	return t.otherID
}

func (t *Ticket) CommentID() uint {
	return t.commentID
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Approve moves the ticket from pending to accepted. Terminal tickets
// cannot transition again; callers must treat those as a no-op before
// invoking this method.
func (t *Ticket) Approve() error {
	if !t.status.CanTransitionTo(vo.StatusAccepted) {
		return fmt.Errorf("cannot approve ticket with status %s", t.status)
	}

	t.status = vo.StatusAccepted
	t.updatedAt = time.Now()

	return nil
}

// Reject moves the ticket from pending to rejected.
func (t *Ticket) Reject() error {
	if !t.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject ticket with status %s", t.status)
	}

	t.status = vo.StatusRejected
	t.updatedAt = time.Now()

	return nil
}

// PendingKey returns the value of the uniqueness column that enforces the
// one-pending-ticket-per-item invariant at the storage level. It mirrors
// the original reference while the ticket is pending and is nil otherwise,
// so terminal tickets never collide on the unique index.
func (t *Ticket) PendingKey() *uint {
	if t.status.IsPending() {
		key := t.originalID
		return &key
	}
	return nil
}
