// Package usecases implements the content-facing application operations.
// Every mutation funnels through the moderation engine; reads go straight
// to the repositories.
package usecases

import (
	"context"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	moddto "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	contentvo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/content/valueobjects"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/services/markdown"
)

type CreateExerciseCommand struct {
	Title         string
	Statement     string
	CategoryID    uint
	Difficulty    string
	TimeLimitMS   int
	MemoryLimitKB int
	Tags          []string
	Comment       string
	ActorID       uint
	Privileged    bool
}

type CreateExerciseResult struct {
	ExerciseID uint
	Ticket     moddto.TicketDTO
}

type CreateExerciseUseCase struct {
	exercises  content.ExerciseRepository
	categories content.CategoryRepository
	engine     *appmod.Engine
	markdown   markdown.MarkdownService
	logger     logger.Interface
}

func NewCreateExerciseUseCase(
	exercises content.ExerciseRepository,
	categories content.CategoryRepository,
	engine *appmod.Engine,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *CreateExerciseUseCase {
	return &CreateExerciseUseCase{
		exercises:  exercises,
		categories: categories,
		engine:     engine,
		markdown:   markdownService,
		logger:     logger,
	}
}

func (uc *CreateExerciseUseCase) Execute(ctx context.Context, cmd CreateExerciseCommand) (*CreateExerciseResult, error) {
	difficulty, err := contentvo.NewDifficulty(cmd.Difficulty)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if _, err := uc.categories.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	exists, err := uc.exercises.ExistsByTitleInCategory(ctx, cmd.Title, cmd.CategoryID, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, appErrors.NewConflictError("an exercise with this title already exists in the category")
	}

	statement := uc.markdown.Sanitize(cmd.Statement)

	exercise, err := content.NewExercise(
		cmd.Title, statement, cmd.CategoryID, difficulty,
		cmd.TimeLimitMS, cmd.MemoryLimitKB, cmd.Tags, cmd.ActorID,
	)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeExercise,
		Operation:   vo.OperationCreate,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		Item:        exercise,
	})
	if err != nil {
		return nil, err
	}

	return &CreateExerciseResult{
		ExerciseID: exercise.ID(),
		Ticket:     moddto.FromTicket(ticket),
	}, nil
}
