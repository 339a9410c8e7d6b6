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

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NoteMapper
}

func NewNoteRepository(gdb *gorm.DB) content.NoteRepository {
	return &NoteRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) Save(ctx context.Context, note *content.Note) error {
	model, err := r.mapper.ToModel(note)
	if err != nil {
		return fmt.Errorf("failed to map note entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	if err := note.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set note ID: %w", err)
	}

	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, id uint, note *content.Note) error {
	model, err := r.mapper.ToModel(note)
	if err != nil {
		return fmt.Errorf("failed to map note entity to model: %w", err)
	}
	// Guarded update: Save would fall back to an insert when the row is
	// missing, so the id must be matched explicitly.
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NoteModel{}).
		Where("id = ?", id).
		Select("*").Omit("id").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update note: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("note not found")
	}

	return nil
}

func (r *NoteRepositoryImpl) GetByID(ctx context.Context, id uint) (*content.Note, error) {
	var model models.NoteModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("note not found")
		}
		return nil, fmt.Errorf("failed to get note by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NoteRepositoryImpl) List(ctx context.Context, filter content.NoteFilter) ([]*content.Note, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NoteModel{})

	if filter.VisibleOnly {
		query = query.Where("visible = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	var modelList []*models.NoteModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map note models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *NoteRepositoryImpl) SetVisible(ctx context.Context, id uint, visible bool) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NoteModel{}).
		Where("id = ?", id).
		Update("visible", visible)
	if result.Error != nil {
		return fmt.Errorf("failed to update note visibility: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("note not found")
	}

	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.NoteModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete note: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("note not found")
	}

	return nil
}

func (r *NoteRepositoryImpl) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NoteModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count notes by category: %w", err)
	}

	return count, nil
}

func (r *NoteRepositoryImpl) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NoteModel{}).
		Where("category_id = ?", fromCategoryID).
		Update("category_id", toCategoryID).Error
	if err != nil {
		return fmt.Errorf("failed to reassign notes: %w", err)
	}

	return nil
}
