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

type NewsRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NewsMapper
}

func NewNewsRepository(gdb *gorm.DB) content.NewsRepository {
	return &NewsRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewNewsMapper(),
	}
}

func (r *NewsRepositoryImpl) Save(ctx context.Context, news *content.News) error {
	model, err := r.mapper.ToModel(news)
	if err != nil {
		return fmt.Errorf("failed to map news entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}

	if err := news.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set news ID: %w", err)
	}

	return nil
}

func (r *NewsRepositoryImpl) Update(ctx context.Context, id uint, news *content.News) error {
	model, err := r.mapper.ToModel(news)
	if err != nil {
		return fmt.Errorf("failed to map news entity to model: %w", err)
	}
	// Guarded update: Save would fall back to an insert when the row is
	// missing, so the id must be matched explicitly.
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NewsModel{}).
		Where("id = ?", id).
		Select("*").Omit("id").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update news: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("news not found")
	}

	return nil
}

func (r *NewsRepositoryImpl) GetByID(ctx context.Context, id uint) (*content.News, error) {
	var model models.NewsModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("news not found")
		}
		return nil, fmt.Errorf("failed to get news by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NewsRepositoryImpl) List(ctx context.Context, filter content.NewsFilter) ([]*content.News, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NewsModel{})

	if filter.VisibleOnly {
		query = query.Where("visible = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	var modelList []*models.NewsModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list news: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map news models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *NewsRepositoryImpl) SetVisible(ctx context.Context, id uint, visible bool) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NewsModel{}).
		Where("id = ?", id).
		Update("visible", visible)
	if result.Error != nil {
		return fmt.Errorf("failed to update news visibility: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("news not found")
	}

	return nil
}

func (r *NewsRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.NewsModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete news: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("news not found")
	}

	return nil
}
