package content

import (
	"context"

	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/content/valueobjects"
)

// ExerciseFilter narrows exercise listings. Nil fields are ignored.
type ExerciseFilter struct {
	CategoryID  *uint
	Difficulty  *vo.Difficulty
	Tag         *string
	VisibleOnly bool
	Page        int
	PageSize    int
}

// NoteFilter narrows note listings.
type NoteFilter struct {
	CategoryID  *uint
	VisibleOnly bool
	Page        int
	PageSize    int
}

// NewsFilter narrows news listings.
type NewsFilter struct {
	VisibleOnly bool
	Page        int
	PageSize    int
}

type ExerciseRepository interface {
	Save(ctx context.Context, exercise *Exercise) error
	Update(ctx context.Context, id uint, exercise *Exercise) error
	GetByID(ctx context.Context, id uint) (*Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]*Exercise, int64, error)
	SetVisible(ctx context.Context, id uint, visible bool) error
	Delete(ctx context.Context, id uint) error
	ExistsByTitleInCategory(ctx context.Context, title string, categoryID uint, excludeID uint) (bool, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uint) error
}

type NoteRepository interface {
	Save(ctx context.Context, note *Note) error
	Update(ctx context.Context, id uint, note *Note) error
	GetByID(ctx context.Context, id uint) (*Note, error)
	List(ctx context.Context, filter NoteFilter) ([]*Note, int64, error)
	SetVisible(ctx context.Context, id uint, visible bool) error
	Delete(ctx context.Context, id uint) error
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uint) error
}

type NewsRepository interface {
	Save(ctx context.Context, news *News) error
	Update(ctx context.Context, id uint, news *News) error
	GetByID(ctx context.Context, id uint) (*News, error)
	List(ctx context.Context, filter NewsFilter) ([]*News, int64, error)
	SetVisible(ctx context.Context, id uint, visible bool) error
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Delete(ctx context.Context, id uint) error
}
