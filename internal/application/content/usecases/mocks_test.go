package usecases

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type memExerciseRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*content.Exercise
}

func newMemExerciseRepo() *memExerciseRepo {
	return &memExerciseRepo{rows: make(map[uint]*content.Exercise)}
}

func (r *memExerciseRepo) Save(ctx context.Context, ex *content.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if err := ex.SetID(r.seq); err != nil {
		return err
	}
	r.rows[ex.ID()] = ex
	return nil
}

func (r *memExerciseRepo) Update(ctx context.Context, id uint, ex *content.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[id]
	if !ok {
		return appErrors.NewNotFoundError("exercise not found")
	}
	replacement, err := content.ReconstructExercise(
		id, ex.Title(), ex.Statement(), ex.CategoryID(), ex.Difficulty(),
		ex.TimeLimitMS(), ex.MemoryLimitKB(), ex.Tags(), existing.Visible(),
		existing.CreatedBy(), existing.CreatedAt(), time.Now(),
	)
	if err != nil {
		return err
	}
	r.rows[id] = replacement
	return nil
}

func (r *memExerciseRepo) GetByID(ctx context.Context, id uint) (*content.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ex, ok := r.rows[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("exercise not found")
	}
	return ex, nil
}

func (r *memExerciseRepo) List(ctx context.Context, filter content.ExerciseFilter) ([]*content.Exercise, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*content.Exercise
	for _, ex := range r.rows {
		if filter.VisibleOnly && !ex.Visible() {
			continue
		}
		if filter.CategoryID != nil && ex.CategoryID() != *filter.CategoryID {
			continue
		}
		result = append(result, ex)
	}
	return result, int64(len(result)), nil
}

func (r *memExerciseRepo) SetVisible(ctx context.Context, id uint, visible bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ex, ok := r.rows[id]
	if !ok {
		return appErrors.NewNotFoundError("exercise not found")
	}
	if visible {
		ex.Publish()
	} else {
		ex.Hide()
	}
	return nil
}

func (r *memExerciseRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return appErrors.NewNotFoundError("exercise not found")
	}
	delete(r.rows, id)
	return nil
}

func (r *memExerciseRepo) ExistsByTitleInCategory(ctx context.Context, title string, categoryID uint, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ex := range r.rows {
		if !ex.Visible() || id == excludeID {
			continue
		}
		if ex.CategoryID() == categoryID && strings.EqualFold(ex.Title(), title) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memExerciseRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, ex := range r.rows {
		if ex.CategoryID() == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *memExerciseRepo) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ex := range r.rows {
		if ex.CategoryID() != fromCategoryID {
			continue
		}
		moved, err := content.ReconstructExercise(
			id, ex.Title(), ex.Statement(), toCategoryID, ex.Difficulty(),
			ex.TimeLimitMS(), ex.MemoryLimitKB(), ex.Tags(), ex.Visible(),
			ex.CreatedBy(), ex.CreatedAt(), time.Now(),
		)
		if err != nil {
			return err
		}
		r.rows[id] = moved
	}
	return nil
}

func (r *memExerciseRepo) get(id uint) *content.Exercise {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

// exerciseStore adapts the exercise repository to the engine's store port,
// the same shape the production registry uses.
type exerciseStore struct {
	repo *memExerciseRepo
}

func (s exerciseStore) FindByID(ctx context.Context, id uint) (content.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s exerciseStore) Insert(ctx context.Context, item content.Item) error {
	return s.repo.Save(ctx, item.(*content.Exercise))
}

func (s exerciseStore) Update(ctx context.Context, id uint, item content.Item) error {
	return s.repo.Update(ctx, id, item.(*content.Exercise))
}

func (s exerciseStore) SetVisible(ctx context.Context, id uint, visible bool) error {
	return s.repo.SetVisible(ctx, id, visible)
}

func (s exerciseStore) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s exerciseStore) CheckPublishable(ctx context.Context, item content.Item, excludeID uint) error {
	exercise, ok := item.(*content.Exercise)
	if !ok {
		return appErrors.NewInternalError("expected exercise")
	}
	exists, err := s.repo.ExistsByTitleInCategory(ctx, exercise.Title(), exercise.CategoryID(), excludeID)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.NewConflictError("an exercise with this title already exists in the category")
	}
	return nil
}

type memNoteRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*content.Note
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{rows: make(map[uint]*content.Note)}
}

func (r *memNoteRepo) Save(ctx context.Context, n *content.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if err := n.SetID(r.seq); err != nil {
		return err
	}
	r.rows[n.ID()] = n
	return nil
}

func (r *memNoteRepo) Update(ctx context.Context, id uint, n *content.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[id]
	if !ok {
		return appErrors.NewNotFoundError("note not found")
	}
	replacement, err := content.ReconstructNote(
		id, n.Title(), n.Body(), n.CategoryID(), existing.Visible(),
		existing.CreatedBy(), existing.CreatedAt(), time.Now(),
	)
	if err != nil {
		return err
	}
	r.rows[id] = replacement
	return nil
}

func (r *memNoteRepo) GetByID(ctx context.Context, id uint) (*content.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.rows[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("note not found")
	}
	return n, nil
}

func (r *memNoteRepo) List(ctx context.Context, filter content.NoteFilter) ([]*content.Note, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*content.Note
	for _, n := range r.rows {
		if filter.VisibleOnly && !n.Visible() {
			continue
		}
		if filter.CategoryID != nil && n.CategoryID() != *filter.CategoryID {
			continue
		}
		result = append(result, n)
	}
	return result, int64(len(result)), nil
}

func (r *memNoteRepo) SetVisible(ctx context.Context, id uint, visible bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.rows[id]
	if !ok {
		return appErrors.NewNotFoundError("note not found")
	}
	if visible {
		n.Publish()
	} else {
		n.Hide()
	}
	return nil
}

func (r *memNoteRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return appErrors.NewNotFoundError("note not found")
	}
	delete(r.rows, id)
	return nil
}

func (r *memNoteRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, n := range r.rows {
		if n.CategoryID() == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *memNoteRepo) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, n := range r.rows {
		if n.CategoryID() != fromCategoryID {
			continue
		}
		moved, err := content.ReconstructNote(
			id, n.Title(), n.Body(), toCategoryID, n.Visible(),
			n.CreatedBy(), n.CreatedAt(), time.Now(),
		)
		if err != nil {
			return err
		}
		r.rows[id] = moved
	}
	return nil
}

type noteStore struct {
	repo *memNoteRepo
}

func (s noteStore) FindByID(ctx context.Context, id uint) (content.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s noteStore) Insert(ctx context.Context, item content.Item) error {
	return s.repo.Save(ctx, item.(*content.Note))
}

func (s noteStore) Update(ctx context.Context, id uint, item content.Item) error {
	return s.repo.Update(ctx, id, item.(*content.Note))
}

func (s noteStore) SetVisible(ctx context.Context, id uint, visible bool) error {
	return s.repo.SetVisible(ctx, id, visible)
}

func (s noteStore) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s noteStore) CheckPublishable(ctx context.Context, item content.Item, excludeID uint) error {
	return nil
}

type memCategoryRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*content.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{rows: make(map[uint]*content.Category)}
}

func (r *memCategoryRepo) Save(ctx context.Context, c *content.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rows {
		if strings.EqualFold(existing.Name(), c.Name()) {
			return gorm.ErrDuplicatedKey
		}
	}

	r.seq++
	if err := c.SetID(r.seq); err != nil {
		return err
	}
	r.rows[c.ID()] = c
	return nil
}

func (r *memCategoryRepo) Update(ctx context.Context, c *content.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.rows {
		if id != c.ID() && strings.EqualFold(existing.Name(), c.Name()) {
			return gorm.ErrDuplicatedKey
		}
	}
	if _, ok := r.rows[c.ID()]; !ok {
		return appErrors.NewNotFoundError("category not found")
	}
	r.rows[c.ID()] = c
	return nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id uint) (*content.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.rows[id]
	if !ok {
		return nil, appErrors.NewNotFoundError("category not found")
	}
	return c, nil
}

func (r *memCategoryRepo) GetByName(ctx context.Context, name string) (*content.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.rows {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, appErrors.NewNotFoundError("category not found")
}

func (r *memCategoryRepo) List(ctx context.Context) ([]*content.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*content.Category, 0, len(r.rows))
	for _, c := range r.rows {
		result = append(result, c)
	}
	return result, nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return appErrors.NewNotFoundError("category not found")
	}
	delete(r.rows, id)
	return nil
}

func (r *memCategoryRepo) has(id uint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok
}

type memTicketRepo struct {
	mu     sync.Mutex
	seq    uint
	rows   map[uint]*moderation.Ticket
	status map[uint]vo.TicketStatus
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{
		rows:   make(map[uint]*moderation.Ticket),
		status: make(map[uint]vo.TicketStatus),
	}
}

func (r *memTicketRepo) Save(ctx context.Context, t *moderation.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.Status().IsPending() {
		for id, row := range r.rows {
			if r.status[id].IsPending() && row.ItemType() == t.ItemType() && row.OriginalID() == t.OriginalID() {
				return gorm.ErrDuplicatedKey
			}
		}
	}

	r.seq++
	if err := t.SetID(r.seq); err != nil {
		return err
	}
	r.rows[t.ID()] = t
	r.status[t.ID()] = t.Status()
	return nil
}

func (r *memTicketRepo) GetByID(ctx context.Context, ticketID uint) (*moderation.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.rows[ticketID]
	if !ok {
		return nil, appErrors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (r *memTicketRepo) Resolve(ctx context.Context, t *moderation.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	status, ok := r.status[t.ID()]
	if !ok {
		return appErrors.NewNotFoundError("ticket not found")
	}
	if !status.IsPending() {
		return appErrors.NewConflictError("ticket already resolved")
	}
	r.status[t.ID()] = t.Status()
	return nil
}

func (r *memTicketRepo) ListPending(ctx context.Context, filter moderation.TicketFilter) ([]*moderation.Ticket, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*moderation.Ticket
	for id, t := range r.rows {
		if !r.status[id].IsPending() {
			continue
		}
		if filter.ItemType != nil && t.ItemType() != *filter.ItemType {
			continue
		}
		result = append(result, t)
	}
	return result, int64(len(result)), nil
}

func (r *memTicketRepo) HasPending(ctx context.Context, itemType vo.ItemType, originalID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.rows {
		if r.status[id].IsPending() && t.ItemType() == itemType && t.OriginalID() == originalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memTicketRepo) CountByCommentID(ctx context.Context, commentID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, t := range r.rows {
		if t.CommentID() == commentID {
			count++
		}
	}
	return count, nil
}

func (r *memTicketRepo) lastTicket() *moderation.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[r.seq]
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

func (r *memCommentRepo) body(commentID uint) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[commentID]
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// contentFixture wires the lifecycle use cases against in-memory
// repositories and a real engine.
type contentFixture struct {
	exercises  *memExerciseRepo
	notes      *memNoteRepo
	categories *memCategoryRepo
	tickets    *memTicketRepo
	comments   *memCommentRepo
	engine     *appmod.Engine
}

func newContentFixture() *contentFixture {
	f := &contentFixture{
		exercises:  newMemExerciseRepo(),
		notes:      newMemNoteRepo(),
		categories: newMemCategoryRepo(),
		tickets:    newMemTicketRepo(),
		comments:   newMemCommentRepo(),
	}

	stores := appmod.Registry{
		vo.ItemTypeExercise: exerciseStore{repo: f.exercises},
		vo.ItemTypeNote:     noteStore{repo: f.notes},
	}
	f.engine = appmod.NewEngine(f.tickets, f.comments, stores, passthroughTxManager{}, nil, testLogger())

	return f
}

func (f *contentFixture) seedCategory(t *testing.T, name string) *content.Category {
	t.Helper()

	category, err := content.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, f.categories.Save(context.Background(), category))
	return category
}

var _ content.ExerciseRepository = (*memExerciseRepo)(nil)
var _ content.NoteRepository = (*memNoteRepo)(nil)
var _ content.CategoryRepository = (*memCategoryRepo)(nil)
var _ moderation.TicketRepository = (*memTicketRepo)(nil)
var _ moderation.CommentRepository = (*memCommentRepo)(nil)
var _ appmod.ContentStore = exerciseStore{}
var _ appmod.ContentStore = noteStore{}
var _ appmod.TxManager = passthroughTxManager{}
