package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
)

type ListNotesQuery struct {
	CategoryID    *uint
	IncludeHidden bool
	Page          int
	PageSize      int
}

type ListNotesResult struct {
	Notes []dto.NoteDTO
	Total int64
}

type ListNotesUseCase struct {
	notes content.NoteRepository
}

func NewListNotesUseCase(notes content.NoteRepository) *ListNotesUseCase {
	return &ListNotesUseCase{notes: notes}
}

func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) (*ListNotesResult, error) {
	notes, total, err := uc.notes.List(ctx, content.NoteFilter{
		CategoryID:  query.CategoryID,
		VisibleOnly: !query.IncludeHidden,
		Page:        query.Page,
		PageSize:    query.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &ListNotesResult{
		Notes: dto.FromNotes(notes),
		Total: total,
	}, nil
}
