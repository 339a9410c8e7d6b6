package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type GetNewsQuery struct {
	NewsID        uint
	IncludeHidden bool
}

type GetNewsUseCase struct {
	news content.NewsRepository
}

func NewGetNewsUseCase(news content.NewsRepository) *GetNewsUseCase {
	return &GetNewsUseCase{news: news}
}

func (uc *GetNewsUseCase) Execute(ctx context.Context, query GetNewsQuery) (*dto.NewsDTO, error) {
	news, err := uc.news.GetByID(ctx, query.NewsID)
	if err != nil {
		return nil, err
	}

	if !news.Visible() && !query.IncludeHidden {
		return nil, appErrors.NewNotFoundError("news not found")
	}

	result := dto.FromNews(news)
	return &result, nil
}
