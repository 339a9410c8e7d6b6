package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/mappers"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/db"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(gdb *gorm.DB) moderation.CommentRepository {
	return &CommentRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepositoryImpl) Save(ctx context.Context, comment *moderation.Comment) error {
	model, err := r.mapper.ToModel(comment)
	if err != nil {
		return fmt.Errorf("failed to map comment entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if err := comment.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID uint) (*moderation.Comment, error) {
	var model models.CommentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CommentRepositoryImpl) FindByBody(ctx context.Context, body string) (*moderation.Comment, error) {
	var model models.CommentModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("body = ?", body).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment by body: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("comment not found")
	}

	return nil
}
