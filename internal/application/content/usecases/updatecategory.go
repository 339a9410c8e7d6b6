package usecases

import (
	"context"
	"fmt"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID uint
	Name       string
	ActorID    uint
}

type UpdateCategoryResult struct {
	Category dto.CategoryDTO
}

type UpdateCategoryUseCase struct {
	categories content.CategoryRepository
	engine     *appmod.Engine
	txMgr      appmod.TxManager
	logger     logger.Interface
}

func NewUpdateCategoryUseCase(
	categories content.CategoryRepository,
	engine *appmod.Engine,
	txMgr appmod.TxManager,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categories: categories,
		engine:     engine,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error) {
	category, err := uc.categories.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	previousName := category.Name()
	if err := category.Rename(cmd.Name); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.categories.Update(txCtx, category); err != nil {
			if appErrors.IsDuplicateError(err) {
				return appErrors.NewConflictError("a category with this name already exists")
			}
			return appErrors.NewDependencyError("failed to update category", err)
		}

		_, err := uc.engine.RecordAccepted(txCtx, appmod.RecordAcceptedCommand{
			ItemType:    vo.ItemTypeUtils,
			Operation:   vo.OperationUpdate,
			OriginalID:  category.ID(),
			CommentBody: fmt.Sprintf("category %q renamed to %q", previousName, category.Name()),
			ActorID:     cmd.ActorID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	return &UpdateCategoryResult{Category: dto.FromCategory(category)}, nil
}
