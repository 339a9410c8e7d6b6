package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/mappers"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/db"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(gdb *gorm.DB) content.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) Save(ctx context.Context, category *content.Category) error {
	model, err := r.mapper.ToModel(category)
	if err != nil {
		return fmt.Errorf("failed to map category entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("a category with this name already exists")
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	if err := category.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set category ID: %w", err)
	}

	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *content.Category) error {
	model, err := r.mapper.ToModel(category)
	if err != nil {
		return fmt.Errorf("failed to map category entity to model: %w", err)
	}

	// Guarded update: Save would fall back to an insert when the row is
	// missing, so the id must be matched explicitly.
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", category.ID()).
		Select("*").Omit("id").
		Updates(model)
	if result.Error != nil {
		if appErrors.IsDuplicateError(result.Error) {
			return appErrors.NewConflictError("a category with this name already exists")
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("category not found")
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*content.Category, error) {
	var model models.CategoryModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) GetByName(ctx context.Context, name string) (*content.Category, error) {
	var model models.CategoryModel

	err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*content.Category, error) {
	var modelList []*models.CategoryModel

	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("category not found")
	}

	return nil
}
