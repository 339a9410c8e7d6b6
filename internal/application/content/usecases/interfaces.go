package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
)

type CreateExerciseExecutor interface {
	Execute(ctx context.Context, cmd CreateExerciseCommand) (*CreateExerciseResult, error)
}

type UpdateExerciseExecutor interface {
	Execute(ctx context.Context, cmd UpdateExerciseCommand) (*UpdateExerciseResult, error)
}

type DeleteExerciseExecutor interface {
	Execute(ctx context.Context, cmd DeleteExerciseCommand) (*DeleteExerciseResult, error)
}

type GetExerciseExecutor interface {
	Execute(ctx context.Context, query GetExerciseQuery) (*dto.ExerciseDTO, error)
}

type ListExercisesExecutor interface {
	Execute(ctx context.Context, query ListExercisesQuery) (*ListExercisesResult, error)
}

type CreateNoteExecutor interface {
	Execute(ctx context.Context, cmd CreateNoteCommand) (*CreateNoteResult, error)
}

type UpdateNoteExecutor interface {
	Execute(ctx context.Context, cmd UpdateNoteCommand) (*UpdateNoteResult, error)
}

type DeleteNoteExecutor interface {
	Execute(ctx context.Context, cmd DeleteNoteCommand) (*DeleteNoteResult, error)
}

type GetNoteExecutor interface {
	Execute(ctx context.Context, query GetNoteQuery) (*dto.NoteDTO, error)
}

type ListNotesExecutor interface {
	Execute(ctx context.Context, query ListNotesQuery) (*ListNotesResult, error)
}

type CreateNewsExecutor interface {
	Execute(ctx context.Context, cmd CreateNewsCommand) (*CreateNewsResult, error)
}

type UpdateNewsExecutor interface {
	Execute(ctx context.Context, cmd UpdateNewsCommand) (*UpdateNewsResult, error)
}

type DeleteNewsExecutor interface {
	Execute(ctx context.Context, cmd DeleteNewsCommand) (*DeleteNewsResult, error)
}

type GetNewsExecutor interface {
	Execute(ctx context.Context, query GetNewsQuery) (*dto.NewsDTO, error)
}

type ListNewsExecutor interface {
	Execute(ctx context.Context, query ListNewsQuery) (*ListNewsResult, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) (*DeleteCategoryResult, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) (*ListCategoriesResult, error)
}
