package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
)

type ListCategoriesResult struct {
	Categories []dto.CategoryDTO
}

type ListCategoriesUseCase struct {
	categories content.CategoryRepository
}

func NewListCategoriesUseCase(categories content.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categories: categories}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesResult, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListCategoriesResult{Categories: dto.FromCategories(categories)}, nil
}
