package mappers

import (
	"fmt"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
)

type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*content.Category, error)
	ToModel(entity *content.Category) (*models.CategoryModel, error)
	ToEntities(models []*models.CategoryModel) ([]*content.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) (*content.Category, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := content.ReconstructCategory(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category entity: %w", err)
	}

	return entity, nil
}

func (m *CategoryMapperImpl) ToModel(entity *content.Category) (*models.CategoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CategoryModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *CategoryMapperImpl) ToEntities(modelList []*models.CategoryModel) ([]*content.Category, error) {
	entities := make([]*content.Category, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
