package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	contentvo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/content/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type ListExercisesQuery struct {
	CategoryID    *uint
	Difficulty    *string
	Tag           *string
	IncludeHidden bool
	Page          int
	PageSize      int
}

type ListExercisesResult struct {
	Exercises []dto.ExerciseDTO
	Total     int64
}

type ListExercisesUseCase struct {
	exercises content.ExerciseRepository
}

func NewListExercisesUseCase(exercises content.ExerciseRepository) *ListExercisesUseCase {
	return &ListExercisesUseCase{exercises: exercises}
}

func (uc *ListExercisesUseCase) Execute(ctx context.Context, query ListExercisesQuery) (*ListExercisesResult, error) {
	filter := content.ExerciseFilter{
		CategoryID:  query.CategoryID,
		Tag:         query.Tag,
		VisibleOnly: !query.IncludeHidden,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	if query.Difficulty != nil {
		difficulty, err := contentvo.NewDifficulty(*query.Difficulty)
		if err != nil {
			return nil, appErrors.NewValidationError(err.Error())
		}
		filter.Difficulty = &difficulty
	}

	exercises, total, err := uc.exercises.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListExercisesResult{
		Exercises: dto.FromExercises(exercises),
		Total:     total,
	}, nil
}
