package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	moddto "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type DeleteNoteCommand struct {
	NoteID     uint
	Comment    string
	ActorID    uint
	Privileged bool
}

type DeleteNoteResult struct {
	Ticket moddto.TicketDTO
}

type DeleteNoteUseCase struct {
	engine *appmod.Engine
	logger logger.Interface
}

func NewDeleteNoteUseCase(engine *appmod.Engine, logger logger.Interface) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{engine: engine, logger: logger}
}

func (uc *DeleteNoteUseCase) Execute(ctx context.Context, cmd DeleteNoteCommand) (*DeleteNoteResult, error) {
	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeNote,
		Operation:   vo.OperationDelete,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		OriginalID:  cmd.NoteID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteNoteResult{Ticket: moddto.FromTicket(ticket)}, nil
}
