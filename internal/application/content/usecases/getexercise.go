package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type GetExerciseQuery struct {
	ExerciseID uint
	// IncludeHidden lets the review surface inspect invisible drafts.
	// Public callers leave it false.
	IncludeHidden bool
}

type GetExerciseUseCase struct {
	exercises content.ExerciseRepository
}

func NewGetExerciseUseCase(exercises content.ExerciseRepository) *GetExerciseUseCase {
	return &GetExerciseUseCase{exercises: exercises}
}

func (uc *GetExerciseUseCase) Execute(ctx context.Context, query GetExerciseQuery) (*dto.ExerciseDTO, error) {
	exercise, err := uc.exercises.GetByID(ctx, query.ExerciseID)
	if err != nil {
		return nil, err
	}

	if !exercise.Visible() && !query.IncludeHidden {
		return nil, appErrors.NewNotFoundError("exercise not found")
	}

	result := dto.FromExercise(exercise)
	return &result, nil
}
