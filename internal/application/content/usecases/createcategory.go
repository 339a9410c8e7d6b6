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

type CreateCategoryCommand struct {
	Name    string
	ActorID uint
}

type CreateCategoryResult struct {
	Category dto.CategoryDTO
}

// CreateCategoryUseCase adds reference data. Category changes skip the
// review queue; an auto-accepted ticket records who did what.
type CreateCategoryUseCase struct {
	categories content.CategoryRepository
	engine     *appmod.Engine
	txMgr      appmod.TxManager
	logger     logger.Interface
}

func NewCreateCategoryUseCase(
	categories content.CategoryRepository,
	engine *appmod.Engine,
	txMgr appmod.TxManager,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categories: categories,
		engine:     engine,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	category, err := content.NewCategory(cmd.Name)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if existing, err := uc.categories.GetByName(ctx, category.Name()); err == nil && existing != nil {
		return nil, appErrors.NewConflictError("a category with this name already exists")
	} else if err != nil && !appErrors.IsNotFoundError(err) {
		return nil, err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.categories.Save(txCtx, category); err != nil {
			if appErrors.IsDuplicateError(err) {
				return appErrors.NewConflictError("a category with this name already exists")
			}
			return appErrors.NewDependencyError("failed to save category", err)
		}

		_, err := uc.engine.RecordAccepted(txCtx, appmod.RecordAcceptedCommand{
			ItemType:    vo.ItemTypeUtils,
			Operation:   vo.OperationCreate,
			OriginalID:  category.ID(),
			CommentBody: fmt.Sprintf("category %q created", category.Name()),
			ActorID:     cmd.ActorID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "name", category.Name())

	return &CreateCategoryResult{Category: dto.FromCategory(category)}, nil
}
