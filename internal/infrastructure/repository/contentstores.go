package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

// exerciseStore adapts the typed exercise repository to the generic
// content store the moderation engine dispatches on.
type exerciseStore struct {
	repo content.ExerciseRepository
}

func (s *exerciseStore) FindByID(ctx context.Context, id uint) (content.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *exerciseStore) Insert(ctx context.Context, item content.Item) error {
	exercise, ok := item.(*content.Exercise)
	if !ok {
		return fmt.Errorf("expected exercise, got %T", item)
	}
	return s.repo.Save(ctx, exercise)
}

func (s *exerciseStore) Update(ctx context.Context, id uint, item content.Item) error {
	exercise, ok := item.(*content.Exercise)
	if !ok {
		return fmt.Errorf("expected exercise, got %T", item)
	}
	return s.repo.Update(ctx, id, exercise)
}

func (s *exerciseStore) SetVisible(ctx context.Context, id uint, visible bool) error {
	return s.repo.SetVisible(ctx, id, visible)
}

func (s *exerciseStore) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// CheckPublishable re-runs the natural-key check at publish time. A second
// staged create with the same title is invisible to the submit-time check,
// so the first approval wins and later ones conflict here.
func (s *exerciseStore) CheckPublishable(ctx context.Context, item content.Item, excludeID uint) error {
	exercise, ok := item.(*content.Exercise)
	if !ok {
		return fmt.Errorf("expected exercise, got %T", item)
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

type noteStore struct {
	repo content.NoteRepository
}

func (s *noteStore) FindByID(ctx context.Context, id uint) (content.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *noteStore) Insert(ctx context.Context, item content.Item) error {
	note, ok := item.(*content.Note)
	if !ok {
		return fmt.Errorf("expected note, got %T", item)
	}
	return s.repo.Save(ctx, note)
}

func (s *noteStore) Update(ctx context.Context, id uint, item content.Item) error {
	note, ok := item.(*content.Note)
	if !ok {
		return fmt.Errorf("expected note, got %T", item)
	}
	return s.repo.Update(ctx, id, note)
}

func (s *noteStore) SetVisible(ctx context.Context, id uint, visible bool) error {
	return s.repo.SetVisible(ctx, id, visible)
}

func (s *noteStore) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Notes carry no natural key; any staged note may be published.
func (s *noteStore) CheckPublishable(ctx context.Context, item content.Item, excludeID uint) error {
	return nil
}

type newsStore struct {
	repo content.NewsRepository
}

func (s *newsStore) FindByID(ctx context.Context, id uint) (content.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *newsStore) Insert(ctx context.Context, item content.Item) error {
	news, ok := item.(*content.News)
	if !ok {
		return fmt.Errorf("expected news, got %T", item)
	}
	return s.repo.Save(ctx, news)
}

func (s *newsStore) Update(ctx context.Context, id uint, item content.Item) error {
	news, ok := item.(*content.News)
	if !ok {
		return fmt.Errorf("expected news, got %T", item)
	}
	return s.repo.Update(ctx, id, news)
}

func (s *newsStore) SetVisible(ctx context.Context, id uint, visible bool) error {
	return s.repo.SetVisible(ctx, id, visible)
}

func (s *newsStore) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// News carries no natural key; any staged item may be published.
func (s *newsStore) CheckPublishable(ctx context.Context, item content.Item, excludeID uint) error {
	return nil
}

// NewContentStoreRegistry wires one store per moderated content type.
func NewContentStoreRegistry(gdb *gorm.DB) appmod.Registry {
	return appmod.Registry{
		vo.ItemTypeExercise: &exerciseStore{repo: NewExerciseRepository(gdb)},
		vo.ItemTypeNote:     &noteStore{repo: NewNoteRepository(gdb)},
		vo.ItemTypeNews:     &newsStore{repo: NewNewsRepository(gdb)},
	}
}
