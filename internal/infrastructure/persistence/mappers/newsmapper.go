package mappers

import (
	"fmt"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
)

type NewsMapper interface {
	ToEntity(model *models.NewsModel) (*content.News, error)
	ToModel(entity *content.News) (*models.NewsModel, error)
	ToEntities(models []*models.NewsModel) ([]*content.News, error)
}

type NewsMapperImpl struct{}

func NewNewsMapper() NewsMapper {
	return &NewsMapperImpl{}
}

func (m *NewsMapperImpl) ToEntity(model *models.NewsModel) (*content.News, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := content.ReconstructNews(
		model.ID,
		model.Title,
		model.Body,
		model.ImageURL,
		model.Visible,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct news entity: %w", err)
	}

	return entity, nil
}

func (m *NewsMapperImpl) ToModel(entity *content.News) (*models.NewsModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NewsModel{
		ID:        entity.ID(),
		Title:     entity.Title(),
		Body:      entity.Body(),
		ImageURL:  entity.ImageURL(),
		Visible:   entity.Visible(),
		CreatedBy: entity.CreatedBy(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *NewsMapperImpl) ToEntities(modelList []*models.NewsModel) ([]*content.News, error) {
	entities := make([]*content.News, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
