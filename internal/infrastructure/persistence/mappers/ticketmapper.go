package mappers

import (
	"fmt"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
)

type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*moderation.Ticket, error)
	ToModel(entity *moderation.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*moderation.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*moderation.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	itemType, err := vo.NewItemType(model.ItemType)
	if err != nil {
		return nil, fmt.Errorf("failed to create item type: %w", err)
	}

	operation, err := vo.NewOperation(model.Operation)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket status: %w", err)
	}

	entity, err := moderation.ReconstructTicket(
		model.ID,
		itemType,
		operation,
		status,
		model.OriginalID,
		model.ModifiedID,
		model.OtherID,
		model.CommentID,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}

	return entity, nil
}

func (m *TicketMapperImpl) ToModel(entity *moderation.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketModel{
		ID:         entity.ID(),
		ItemType:   entity.ItemType().String(),
		Operation:  entity.Operation().String(),
		Status:     entity.Status().String(),
		OriginalID: entity.OriginalID(),
		ModifiedID: entity.ModifiedID(),
		OtherID:    entity.OtherID(),
		CommentID:  entity.CommentID(),
		CreatedBy:  entity.CreatedBy(),
		PendingKey: entity.PendingKey(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToEntities(modelList []*models.TicketModel) ([]*moderation.Ticket, error) {
	entities := make([]*moderation.Ticket, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
