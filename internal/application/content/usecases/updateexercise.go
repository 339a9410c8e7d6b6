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

type UpdateExerciseCommand struct {
	ExerciseID    uint
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

type UpdateExerciseResult struct {
	Ticket moddto.TicketDTO
}

type UpdateExerciseUseCase struct {
	exercises  content.ExerciseRepository
	categories content.CategoryRepository
	engine     *appmod.Engine
	markdown   markdown.MarkdownService
	logger     logger.Interface
}

func NewUpdateExerciseUseCase(
	exercises content.ExerciseRepository,
	categories content.CategoryRepository,
	engine *appmod.Engine,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *UpdateExerciseUseCase {
	return &UpdateExerciseUseCase{
		exercises:  exercises,
		categories: categories,
		engine:     engine,
		markdown:   markdownService,
		logger:     logger,
	}
}

func (uc *UpdateExerciseUseCase) Execute(ctx context.Context, cmd UpdateExerciseCommand) (*UpdateExerciseResult, error) {
	difficulty, err := contentvo.NewDifficulty(cmd.Difficulty)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	existing, err := uc.exercises.GetByID(ctx, cmd.ExerciseID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.categories.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	exists, err := uc.exercises.ExistsByTitleInCategory(ctx, cmd.Title, cmd.CategoryID, cmd.ExerciseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, appErrors.NewConflictError("an exercise with this title already exists in the category")
	}

	statement := uc.markdown.Sanitize(cmd.Statement)

	revision, err := existing.NewRevision(
		cmd.Title, statement, cmd.CategoryID, difficulty,
		cmd.TimeLimitMS, cmd.MemoryLimitKB, cmd.Tags,
	)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeExercise,
		Operation:   vo.OperationUpdate,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		Item:        revision,
		OriginalID:  cmd.ExerciseID,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateExerciseResult{Ticket: moddto.FromTicket(ticket)}, nil
}
