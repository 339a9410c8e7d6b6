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

type ExerciseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ExerciseMapper
}

func NewExerciseRepository(gdb *gorm.DB) content.ExerciseRepository {
	return &ExerciseRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewExerciseMapper(),
	}
}

func (r *ExerciseRepositoryImpl) Save(ctx context.Context, exercise *content.Exercise) error {
	model, err := r.mapper.ToModel(exercise)
	if err != nil {
		return fmt.Errorf("failed to map exercise entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	if err := exercise.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set exercise ID: %w", err)
	}

	return nil
}

func (r *ExerciseRepositoryImpl) Update(ctx context.Context, id uint, exercise *content.Exercise) error {
	model, err := r.mapper.ToModel(exercise)
	if err != nil {
		return fmt.Errorf("failed to map exercise entity to model: %w", err)
	}
	// Guarded update: Save would fall back to an insert when the row is
	// missing, so the id must be matched explicitly.
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExerciseModel{}).
		Where("id = ?", id).
		Select("*").Omit("id").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update exercise: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("exercise not found")
	}

	return nil
}

func (r *ExerciseRepositoryImpl) GetByID(ctx context.Context, id uint) (*content.Exercise, error) {
	var model models.ExerciseModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("exercise not found")
		}
		return nil, fmt.Errorf("failed to get exercise by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ExerciseRepositoryImpl) List(ctx context.Context, filter content.ExerciseFilter) ([]*content.Exercise, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ExerciseModel{})

	if filter.VisibleOnly {
		query = query.Where("visible = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty = ?", filter.Difficulty.String())
	}
	if filter.Tag != nil {
		query = query.Where("tags LIKE ?", "%"+*filter.Tag+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count exercises: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	var modelList []*models.ExerciseModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list exercises: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map exercise models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *ExerciseRepositoryImpl) SetVisible(ctx context.Context, id uint, visible bool) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExerciseModel{}).
		Where("id = ?", id).
		Update("visible", visible)
	if result.Error != nil {
		return fmt.Errorf("failed to update exercise visibility: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("exercise not found")
	}

	return nil
}

func (r *ExerciseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ExerciseModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete exercise: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("exercise not found")
	}

	return nil
}

// ExistsByTitleInCategory backs the natural-key check for visible rows.
// Hidden shadow drafts are excluded so a staged revision that keeps the
// live title does not block further submissions.
func (r *ExerciseRepositoryImpl) ExistsByTitleInCategory(ctx context.Context, title string, categoryID uint, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExerciseModel{}).
		Where("title = ? AND category_id = ? AND visible = ?", title, categoryID, true)

	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check exercise title: %w", err)
	}

	return count > 0, nil
}

func (r *ExerciseRepositoryImpl) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExerciseModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count exercises by category: %w", err)
	}

	return count, nil
}

func (r *ExerciseRepositoryImpl) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExerciseModel{}).
		Where("category_id = ?", fromCategoryID).
		Update("category_id", toCategoryID).Error
	if err != nil {
		return fmt.Errorf("failed to reassign exercises: %w", err)
	}

	return nil
}
