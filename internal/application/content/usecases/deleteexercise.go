package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	moddto "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type DeleteExerciseCommand struct {
	ExerciseID uint
	Comment    string
	ActorID    uint
	Privileged bool
}

type DeleteExerciseResult struct {
	Ticket moddto.TicketDTO
}

type DeleteExerciseUseCase struct {
	engine *appmod.Engine
	logger logger.Interface
}

func NewDeleteExerciseUseCase(engine *appmod.Engine, logger logger.Interface) *DeleteExerciseUseCase {
	return &DeleteExerciseUseCase{engine: engine, logger: logger}
}

func (uc *DeleteExerciseUseCase) Execute(ctx context.Context, cmd DeleteExerciseCommand) (*DeleteExerciseResult, error) {
	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeExercise,
		Operation:   vo.OperationDelete,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		OriginalID:  cmd.ExerciseID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteExerciseResult{Ticket: moddto.FromTicket(ticket)}, nil
}
