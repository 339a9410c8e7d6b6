package usecases

import (
	"context"
	"fmt"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	CategoryID uint
	// ReplacementID names the category that inherits the exercises and
	// notes of the deleted one. It is an explicit choice, never inferred.
	ReplacementID uint
	ActorID       uint
}

type DeleteCategoryResult struct {
	ReassignedExercises int64
	ReassignedNotes     int64
}

type DeleteCategoryUseCase struct {
	categories content.CategoryRepository
	exercises  content.ExerciseRepository
	notes      content.NoteRepository
	engine     *appmod.Engine
	txMgr      appmod.TxManager
	logger     logger.Interface
}

func NewDeleteCategoryUseCase(
	categories content.CategoryRepository,
	exercises content.ExerciseRepository,
	notes content.NoteRepository,
	engine *appmod.Engine,
	txMgr appmod.TxManager,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categories: categories,
		exercises:  exercises,
		notes:      notes,
		engine:     engine,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) (*DeleteCategoryResult, error) {
	if cmd.ReplacementID == 0 {
		return nil, appErrors.NewValidationError("a replacement category is required")
	}
	if cmd.ReplacementID == cmd.CategoryID {
		return nil, appErrors.NewValidationError("a category cannot replace itself")
	}

	category, err := uc.categories.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	replacement, err := uc.categories.GetByID(ctx, cmd.ReplacementID)
	if err != nil {
		return nil, err
	}

	exerciseCount, err := uc.exercises.CountByCategory(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	noteCount, err := uc.notes.CountByCategory(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.exercises.ReassignCategory(txCtx, cmd.CategoryID, cmd.ReplacementID); err != nil {
			return appErrors.NewDependencyError("failed to reassign exercises", err)
		}
		if err := uc.notes.ReassignCategory(txCtx, cmd.CategoryID, cmd.ReplacementID); err != nil {
			return appErrors.NewDependencyError("failed to reassign notes", err)
		}
		if err := uc.categories.Delete(txCtx, cmd.CategoryID); err != nil {
			return appErrors.NewDependencyError("failed to delete category", err)
		}

		replacementID := cmd.ReplacementID
		_, err := uc.engine.RecordAccepted(txCtx, appmod.RecordAcceptedCommand{
			ItemType:    vo.ItemTypeUtils,
			Operation:   vo.OperationDelete,
			OriginalID:  cmd.CategoryID,
			OtherID:     &replacementID,
			CommentBody: fmt.Sprintf("category %q deleted, contents moved to %q", category.Name(), replacement.Name()),
			ActorID:     cmd.ActorID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("category deleted",
		"category_id", cmd.CategoryID,
		"replacement_id", cmd.ReplacementID,
		"reassigned_exercises", exerciseCount,
		"reassigned_notes", noteCount,
	)

	return &DeleteCategoryResult{
		ReassignedExercises: exerciseCount,
		ReassignedNotes:     noteCount,
	}, nil
}
