package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/mappers"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/db"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) moderation.TicketRepository {
	return &TicketRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, ticket *moderation.Ticket) error {
	model, err := r.mapper.ToModel(ticket)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("item already has a pending review")
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := ticket.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	return nil
}

func (r *TicketRepositoryImpl) GetByID(ctx context.Context, ticketID uint) (*moderation.Ticket, error) {
	var model models.TicketModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Resolve writes the pending-to-terminal transition. The update is guarded
// on the row still being pending so two concurrent reviewers cannot both
// resolve the same ticket; the loser gets a conflict error. Clearing
// pending_key frees the per-item uniqueness slot for future submissions.
func (r *TicketRepositoryImpl) Resolve(ctx context.Context, ticket *moderation.Ticket) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ? AND status = ?", ticket.ID(), vo.StatusPending.String()).
		Updates(map[string]interface{}{
			"status":      ticket.Status().String(),
			"pending_key": nil,
			"updated_at":  ticket.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to resolve ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return appErrors.NewConflictError("ticket was already resolved")
	}

	return nil
}

func (r *TicketRepositoryImpl) ListPending(ctx context.Context, filter moderation.TicketFilter) ([]*moderation.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("status = ?", vo.StatusPending.String())

	if filter.ItemType != nil {
		query = query.Where("item_type = ?", filter.ItemType.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pending tickets: %w", err)
	}

	query = query.Order("created_at ASC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	var modelList []*models.TicketModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pending tickets: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map ticket models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *TicketRepositoryImpl) HasPending(ctx context.Context, itemType vo.ItemType, originalID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("item_type = ? AND pending_key = ?", itemType.String(), originalID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending ticket: %w", err)
	}

	return count > 0, nil
}

func (r *TicketRepositoryImpl) CountByCommentID(ctx context.Context, commentID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets by comment: %w", err)
	}

	return count, nil
}
