package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/content/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type GetNoteQuery struct {
	NoteID        uint
	IncludeHidden bool
}

type GetNoteUseCase struct {
	notes content.NoteRepository
}

func NewGetNoteUseCase(notes content.NoteRepository) *GetNoteUseCase {
	return &GetNoteUseCase{notes: notes}
}

func (uc *GetNoteUseCase) Execute(ctx context.Context, query GetNoteQuery) (*dto.NoteDTO, error) {
	note, err := uc.notes.GetByID(ctx, query.NoteID)
	if err != nil {
		return nil, err
	}

	if !note.Visible() && !query.IncludeHidden {
		return nil, appErrors.NewNotFoundError("note not found")
	}

	result := dto.FromNote(note)
	return &result, nil
}
