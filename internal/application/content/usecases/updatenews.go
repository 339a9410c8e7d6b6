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

type UpdateNewsCommand struct {
	NewsID     uint
	Title      string
	Body       string
	ImageURL   string
	Comment    string
	ActorID    uint
	Privileged bool
}

type UpdateNewsResult struct {
	Ticket moddto.TicketDTO
}

type UpdateNewsUseCase struct {
	news     content.NewsRepository
	engine   *appmod.Engine
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewUpdateNewsUseCase(
	news content.NewsRepository,
	engine *appmod.Engine,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *UpdateNewsUseCase {
	return &UpdateNewsUseCase{news: news, engine: engine, markdown: markdownService, logger: logger}
}

func (uc *UpdateNewsUseCase) Execute(ctx context.Context, cmd UpdateNewsCommand) (*UpdateNewsResult, error) {
	existing, err := uc.news.GetByID(ctx, cmd.NewsID)
	if err != nil {
		return nil, err
	}

	revision, err := existing.NewRevision(cmd.Title, uc.markdown.Sanitize(cmd.Body), cmd.ImageURL)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	ticket, err := uc.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType:    vo.ItemTypeNews,
		Operation:   vo.OperationUpdate,
		Privileged:  cmd.Privileged,
		ActorID:     cmd.ActorID,
		CommentBody: cmd.Comment,
		Item:        revision,
		OriginalID:  cmd.NewsID,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateNewsResult{Ticket: moddto.FromTicket(ticket)}, nil
}
