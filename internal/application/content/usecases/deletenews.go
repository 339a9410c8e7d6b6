package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	moddto "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type DeleteNewsCommand struct {
	NewsID     uint
	Comment    string
	ActorID    uint
	Privileged bool
}

type DeleteNewsResult struct {
	Ticket moddto.TicketDTO
}

type DeleteNewsUseCase struct {
	engine *appmod.Engine
	logger logger.Interface
}

func NewDeleteNewsUseCase(engine *appmod.Engine, logger logger.Interface) *DeleteNewsUseCase {
	return &DeleteNewsUseCase{engine: engine, logger: logger}
}

func (uc *DeleteNewsUseCase) Execute(ctx context.Context, cmd DeleteNewsCommand) (*DeleteNewsResult, error) {
	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeNews,
		Operation:   vo.OperationDelete,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		OriginalID:  cmd.NewsID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteNewsResult{Ticket: moddto.FromTicket(ticket)}, nil
}
