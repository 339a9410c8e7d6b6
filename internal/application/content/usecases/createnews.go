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

type CreateNewsCommand struct {
	Title      string
	Body       string
	ImageURL   string
	Comment    string
	ActorID    uint
	Privileged bool
}

type CreateNewsResult struct {
	NewsID uint
	Ticket moddto.TicketDTO
}

type CreateNewsUseCase struct {
	engine   *appmod.Engine
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewCreateNewsUseCase(engine *appmod.Engine, markdownService markdown.MarkdownService, logger logger.Interface) *CreateNewsUseCase {
	return &CreateNewsUseCase{engine: engine, markdown: markdownService, logger: logger}
}

func (uc *CreateNewsUseCase) Execute(ctx context.Context, cmd CreateNewsCommand) (*CreateNewsResult, error) {
	news, err := content.NewNews(cmd.Title, uc.markdown.Sanitize(cmd.Body), cmd.ImageURL, cmd.ActorID)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeNews,
		Operation:   vo.OperationCreate,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		Item:        news,
	})
	if err != nil {
		return nil, err
	}

	return &CreateNewsResult{
		NewsID: news.ID(),
		Ticket: moddto.FromTicket(ticket),
	}, nil
}
