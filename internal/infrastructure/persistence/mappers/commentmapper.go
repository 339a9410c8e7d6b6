package mappers

import (
	"fmt"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
)

type CommentMapper interface {
	ToEntity(model *models.CommentModel) (*moderation.Comment, error)
	ToModel(entity *moderation.Comment) (*models.CommentModel, error)
}

type CommentMapperImpl struct{}

func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (m *CommentMapperImpl) ToEntity(model *models.CommentModel) (*moderation.Comment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := moderation.ReconstructComment(model.ID, model.Body, model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment entity: %w", err)
	}

	return entity, nil
}

func (m *CommentMapperImpl) ToModel(entity *moderation.Comment) (*models.CommentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CommentModel{
		ID:        entity.ID(),
		Body:      entity.Body(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}
