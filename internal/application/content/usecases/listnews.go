package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
)

type ListNewsQuery struct {
	IncludeHidden bool
	Page          int
	PageSize      int
}

type ListNewsResult struct {
	News  []dto.NewsDTO
	Total int64
}

type ListNewsUseCase struct {
	news content.NewsRepository
}

func NewListNewsUseCase(news content.NewsRepository) *ListNewsUseCase {
	return &ListNewsUseCase{news: news}
}

func (uc *ListNewsUseCase) Execute(ctx context.Context, query ListNewsQuery) (*ListNewsResult, error) {
	items, total, err := uc.news.List(ctx, content.NewsFilter{
		VisibleOnly: !query.IncludeHidden,
		Page:        query.Page,
		PageSize:    query.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &ListNewsResult{
		News:  dto.FromNewsList(items),
		Total: total,
	}, nil
}
