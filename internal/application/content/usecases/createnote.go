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

type CreateNoteCommand struct {
	Title      string
	Body       string
	CategoryID uint
	Comment    string
	ActorID    uint
	Privileged bool
}

type CreateNoteResult struct {
	NoteID uint
	Ticket moddto.TicketDTO
}

type CreateNoteUseCase struct {
	categories content.CategoryRepository
	engine     *appmod.Engine
	markdown   markdown.MarkdownService
	logger     logger.Interface
}

func NewCreateNoteUseCase(
	categories content.CategoryRepository,
	engine *appmod.Engine,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		categories: categories,
		engine:     engine,
		markdown:   markdownService,
		logger:     logger,
	}
}

func (uc *CreateNoteUseCase) Execute(ctx context.Context, cmd CreateNoteCommand) (*CreateNoteResult, error) {
	if _, err := uc.categories.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	note, err := content.NewNote(cmd.Title, uc.markdown.Sanitize(cmd.Body), cmd.CategoryID, cmd.ActorID)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeNote,
		Operation:   vo.OperationCreate,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		Item:        note,
	})
	if err != nil {
		return nil, err
	}

	return &CreateNoteResult{
		NoteID: note.ID(),
		Ticket: moddto.FromTicket(ticket),
	}, nil
}
