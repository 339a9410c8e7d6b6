package mappers

import (
	"fmt"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/content/valueobjects"
	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/persistence/models"
)

type ExerciseMapper interface {
	ToEntity(model *models.ExerciseModel) (*content.Exercise, error)
	ToModel(entity *content.Exercise) (*models.ExerciseModel, error)
	ToEntities(models []*models.ExerciseModel) ([]*content.Exercise, error)
}

type ExerciseMapperImpl struct{}

func NewExerciseMapper() ExerciseMapper {
	return &ExerciseMapperImpl{}
}

func (m *ExerciseMapperImpl) ToEntity(model *models.ExerciseModel) (*content.Exercise, error) {
	if model == nil {
		return nil, nil
	}

	difficulty, err := vo.NewDifficulty(model.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create difficulty: %w", err)
	}

	entity, err := content.ReconstructExercise(
		model.ID,
		model.Title,
		model.Statement,
		model.CategoryID,
		difficulty,
		model.TimeLimitMS,
		model.MemoryLimitKB,
		model.Tags,
		model.Visible,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct exercise entity: %w", err)
	}

	return entity, nil
}

func (m *ExerciseMapperImpl) ToModel(entity *content.Exercise) (*models.ExerciseModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ExerciseModel{
		ID:            entity.ID(),
		Title:         entity.Title(),
		Statement:     entity.Statement(),
		CategoryID:    entity.CategoryID(),
		Difficulty:    entity.Difficulty().String(),
		TimeLimitMS:   entity.TimeLimitMS(),
		MemoryLimitKB: entity.MemoryLimitKB(),
		Tags:          entity.Tags(),
		Visible:       entity.Visible(),
		CreatedBy:     entity.CreatedBy(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *ExerciseMapperImpl) ToEntities(modelList []*models.ExerciseModel) ([]*content.Exercise, error) {
	entities := make([]*content.Exercise, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
