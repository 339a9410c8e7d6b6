package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

func newRegistry(f *fixture) appmod.Registry {
	return appmod.Registry{
		vo.ItemTypeExercise: f.store,
		vo.ItemTypeNote:     f.store,
		vo.ItemTypeNews:     f.store,
	}
}

func TestGetTicket_ResolvesReferences(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewGetTicketUseCase(f.tickets, f.comments, newRegistry(f))

	live, ticket := stageUpdate(t, f, "Two Sum v2")

	detail, err := uc.Execute(ctx, GetTicketQuery{TicketID: ticket.ID()})
	require.NoError(t, err)

	assert.Equal(t, ticket.ID(), detail.ID)
	assert.Equal(t, "rename", detail.CommentBody)

	require.NotNil(t, detail.Original)
	assert.Equal(t, live.ID(), detail.Original.ID)
	assert.Equal(t, "Two Sum", detail.Original.Title)
	assert.True(t, detail.Original.Visible)

	require.NotNil(t, detail.Modified)
	assert.Equal(t, "Two Sum v2", detail.Modified.Title)
	assert.False(t, detail.Modified.Visible)
}

func TestGetTicket_ToleratesVanishedReferences(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewGetTicketUseCase(f.tickets, f.comments, newRegistry(f))

	_, ticket := stageUpdate(t, f, "Two Sum v2")

	// After approval the superseded original row no longer exists.
	_, err := f.approve.Execute(ctx, ApproveTicketCommand{TicketID: ticket.ID()})
	require.NoError(t, err)

	detail, err := uc.Execute(ctx, GetTicketQuery{TicketID: ticket.ID()})
	require.NoError(t, err)
	assert.Nil(t, detail.Original)
	require.NotNil(t, detail.Modified)
	assert.True(t, detail.Modified.Visible)
}

func TestGetTicket_NotFound(t *testing.T) {
	f := newFixture()
	uc := NewGetTicketUseCase(f.tickets, f.comments, newRegistry(f))

	_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 404})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestListPendingTickets(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := NewListPendingTicketsUseCase(f.tickets)

	stageCreate(t, f, "Graph Coloring")
	stageCreate(t, f, "Segment Trees")

	result, err := uc.Execute(ctx, ListPendingTicketsQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Tickets, 2)

	itemType := "news"
	result, err = uc.Execute(ctx, ListPendingTicketsQuery{ItemType: &itemType, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
}

func TestListPendingTickets_InvalidItemType(t *testing.T) {
	f := newFixture()
	uc := NewListPendingTicketsUseCase(f.tickets)

	itemType := "bogus"
	_, err := uc.Execute(context.Background(), ListPendingTicketsQuery{ItemType: &itemType})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidationError(err))
}
