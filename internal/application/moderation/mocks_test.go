package moderation

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type ticketRow struct {
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

// memTicketRepo emulates the tickets table, including the unique pending
// key that rejects a second pending ticket per item.
type memTicketRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*ticketRow
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{rows: make(map[uint]*ticketRow)}
}

func (r *memTicketRepo) Save(ctx context.Context, t *moderation.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.Status().IsPending() {
		for _, row := range r.rows {
			if row.status.IsPending() && row.itemType == t.ItemType() && row.originalID == t.OriginalID() {
				return gorm.ErrDuplicatedKey
			}
		}
	}

	r.seq++
	if err := t.SetID(r.seq); err != nil {
		return err
	}
	r.rows[t.ID()] = &ticketRow{
		itemType:   t.ItemType(),
		operation:  t.Operation(),
		status:     t.Status(),
		originalID: t.OriginalID(),
		modifiedID: t.ModifiedID(),
		otherID:    t.OtherID(),
		commentID:  t.CommentID(),
		createdBy:  t.CreatedBy(),
		createdAt:  t.CreatedAt(),
		updatedAt:  t.UpdatedAt(),
	}
	return nil
}

func (r *memTicketRepo) GetByID(ctx context.Context, ticketID uint) (*moderation.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ticketID]
	if !ok {
		return nil, appErrors.NewNotFoundError("ticket not found")
	}
	return moderation.ReconstructTicket(
		ticketID, row.itemType, row.operation, row.status,
		row.originalID, row.modifiedID, row.otherID, row.commentID, row.createdBy,
		row.createdAt, row.updatedAt,
	)
}

func (r *memTicketRepo) Resolve(ctx context.Context, t *moderation.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[t.ID()]
	if !ok {
		return appErrors.NewNotFoundError("ticket not found")
	}
	if !row.status.IsPending() {
		return appErrors.NewConflictError("ticket already resolved")
	}
	row.status = t.Status()
	row.updatedAt = t.UpdatedAt()
	return nil
}

func (r *memTicketRepo) ListPending(ctx context.Context, filter moderation.TicketFilter) ([]*moderation.Ticket, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*moderation.Ticket
	for id, row := range r.rows {
		if !row.status.IsPending() {
			continue
		}
		if filter.ItemType != nil && row.itemType != *filter.ItemType {
			continue
		}
		t, err := moderation.ReconstructTicket(
			id, row.itemType, row.operation, row.status,
			row.originalID, row.modifiedID, row.otherID, row.commentID, row.createdBy,
			row.createdAt, row.updatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, t)
	}
	return result, int64(len(result)), nil
}

func (r *memTicketRepo) HasPending(ctx context.Context, itemType vo.ItemType, originalID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.status.IsPending() && row.itemType == itemType && row.originalID == originalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memTicketRepo) CountByCommentID(ctx context.Context, commentID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, row := range r.rows {
		if row.commentID == commentID {
			count++
		}
	}
	return count, nil
}

type memCommentRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]string
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{rows: make(map[uint]string)}
}

func (r *memCommentRepo) Save(ctx context.Context, c *moderation.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if err := c.SetID(r.seq); err != nil {
		return err
	}
	r.rows[c.ID()] = c.Body()
	return nil
}

func (r *memCommentRepo) GetByID(ctx context.Context, commentID uint) (*moderation.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	body, ok := r.rows[commentID]
	if !ok {
		return nil, appErrors.NewNotFoundError("comment not found")
	}
	return moderation.ReconstructComment(commentID, body, time.Now())
}

func (r *memCommentRepo) FindByBody(ctx context.Context, body string) (*moderation.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.rows {
		if b == body {
			return moderation.ReconstructComment(id, b, time.Now())
		}
	}
	return nil, appErrors.NewNotFoundError("comment not found")
}

func (r *memCommentRepo) Delete(ctx context.Context, commentID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, commentID)
	return nil
}

// memStore is an in-memory ContentStore with an optional natural-key
// uniqueness check on titles.
type memStore struct {
	mu           sync.Mutex
	seq          uint
	items        map[uint]content.Item
	uniqueTitles bool
}

func newMemStore() *memStore {
	return &memStore{items: make(map[uint]content.Item)}
}

func (s *memStore) FindByID(ctx context.Context, id uint) (content.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("item not found")
	}
	return item, nil
}

func (s *memStore) Insert(ctx context.Context, item content.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uniqueTitles {
		for _, existing := range s.items {
			if existing.Title() == item.Title() {
				return gorm.ErrDuplicatedKey
			}
		}
	}

	s.seq++
	if err := item.SetID(s.seq); err != nil {
		return err
	}
	s.items[item.ID()] = item
	return nil
}

func (s *memStore) Update(ctx context.Context, id uint, item content.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return appErrors.NewNotFoundError("item not found")
	}
	if item.ID() == 0 {
		if err := item.SetID(id); err != nil {
			return err
		}
	}
	s.items[id] = item
	return nil
}

func (s *memStore) SetVisible(ctx context.Context, id uint, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return appErrors.NewNotFoundError("item not found")
	}
	if visible {
		item.Publish()
	} else {
		item.Hide()
	}
	return nil
}

func (s *memStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return appErrors.NewNotFoundError("item not found")
	}
	delete(s.items, id)
	return nil
}

func (s *memStore) CheckPublishable(ctx context.Context, item content.Item, excludeID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.items {
		if id == item.ID() || id == excludeID {
			continue
		}
		if existing.Visible() && existing.Title() == item.Title() {
			return appErrors.NewConflictError("an item with this title already exists")
		}
	}
	return nil
}

func (s *memStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// passthroughTxManager runs the function on the caller's context. The
// transactional behavior itself is covered by repository tests.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type captureNotifier struct {
	events chan NotificationEvent
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{events: make(chan NotificationEvent, 8)}
}

func (n *captureNotifier) Notify(ctx context.Context, event NotificationEvent) error {
	n.events <- event
	return nil
}
