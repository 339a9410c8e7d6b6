package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	moddto "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/services/markdown"
)

type UpdateNoteCommand struct {
	NoteID     uint
	Title      string
	Body       string
	CategoryID uint
	Comment    string
	ActorID    uint
	Privileged bool
}

type UpdateNoteResult struct {
	Ticket moddto.TicketDTO
}

type UpdateNoteUseCase struct {
	notes      content.NoteRepository
	categories content.CategoryRepository
	engine     *appmod.Engine
	markdown   markdown.MarkdownService
	logger     logger.Interface
}

func NewUpdateNoteUseCase(
	notes content.NoteRepository,
	categories content.CategoryRepository,
	engine *appmod.Engine,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		notes:      notes,
		categories: categories,
		engine:     engine,
		markdown:   markdownService,
		logger:     logger,
	}
}

func (uc *UpdateNoteUseCase) Execute(ctx context.Context, cmd UpdateNoteCommand) (*UpdateNoteResult, error) {
	existing, err := uc.notes.GetByID(ctx, cmd.NoteID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.categories.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	revision, err := existing.NewRevision(cmd.Title, uc.markdown.Sanitize(cmd.Body), cmd.CategoryID)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeNote,
		Operation:   vo.OperationUpdate,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		Item:        revision,
		OriginalID:  cmd.NoteID,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateNoteResult{Ticket: moddto.FromTicket(ticket)}, nil
}
