package mappers

import (
	"fmt"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
)

type NoteMapper interface {
	ToEntity(model *models.NoteModel) (*content.Note, error)
	ToModel(entity *content.Note) (*models.NoteModel, error)
	ToEntities(models []*models.NoteModel) ([]*content.Note, error)
}

type NoteMapperImpl struct{}

func NewNoteMapper() NoteMapper {
	return &NoteMapperImpl{}
}

func (m *NoteMapperImpl) ToEntity(model *models.NoteModel) (*content.Note, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := content.ReconstructNote(
		model.ID,
		model.Title,
		model.Body,
		model.CategoryID,
		model.Visible,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct note entity: %w", err)
	}

	return entity, nil
}

func (m *NoteMapperImpl) ToModel(entity *content.Note) (*models.NoteModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NoteModel{
		ID:         entity.ID(),
		Title:      entity.Title(),
		Body:       entity.Body(),
		CategoryID: entity.CategoryID(),
		Visible:    entity.Visible(),
		CreatedBy:  entity.CreatedBy(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *NoteMapperImpl) ToEntities(modelList []*models.NoteModel) ([]*content.Note, error) {
	entities := make([]*content.Note, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
