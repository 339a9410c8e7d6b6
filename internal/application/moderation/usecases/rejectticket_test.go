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

func TestRejectTicket_StagedUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	live, ticket := stageUpdate(t, f, "Two Sum v2")
	shadowID := *ticket.ModifiedID()

	result, err := f.reject.Execute(ctx, RejectTicketCommand{TicketID: ticket.ID()})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, vo.StatusRejected.String(), result.Status)

	// The shadow draft is discarded; the live row is untouched.
	assert.False(t, f.store.has(shadowID))

	original, err := f.store.FindByID(ctx, live.ID())
	require.NoError(t, err)
	assert.True(t, original.Visible())
	assert.Equal(t, "Two Sum", original.Title())
}

func TestRejectTicket_StagedCreate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ticket := stageCreate(t, f, "Graph Coloring")

	result, err := f.reject.Execute(ctx, RejectTicketCommand{TicketID: ticket.ID()})
	require.NoError(t, err)
	assert.True(t, result.Applied)

	// The invisible staged row and its orphaned comment are both gone.
	assert.False(t, f.store.has(ticket.OriginalID()))
	assert.False(t, f.comments.has(ticket.CommentID()))
}

func TestRejectTicket_StagedDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	live := seedExercise(t, f, "Questionable")
	ticket, err := f.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationDelete,
		ActorID: 7, CommentBody: "remove", OriginalID: live.ID(),
	})
	require.NoError(t, err)

	result, err := f.reject.Execute(ctx, RejectTicketCommand{TicketID: ticket.ID()})
	require.NoError(t, err)
	assert.True(t, result.Applied)

	// A rejected delete never touched the item.
	item, err := f.store.FindByID(ctx, live.ID())
	require.NoError(t, err)
	assert.True(t, item.Visible())
}

func TestRejectTicket_TerminalIsNoOp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, ticket := stageUpdate(t, f, "Two Sum v2")

	first, err := f.reject.Execute(ctx, RejectTicketCommand{TicketID: ticket.ID()})
	require.NoError(t, err)
	require.True(t, first.Applied)

	second, err := f.reject.Execute(ctx, RejectTicketCommand{TicketID: ticket.ID()})
	require.NoError(t, err)
	assert.False(t, second.Applied)
	assert.Equal(t, vo.StatusRejected.String(), second.Status)
}

func TestRejectTicket_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.reject.Execute(context.Background(), RejectTicketCommand{TicketID: 404})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestRejectTicket_FreesPendingSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	live, ticket := stageUpdate(t, f, "Two Sum v2")

	_, err := f.reject.Execute(ctx, RejectTicketCommand{TicketID: ticket.ID()})
	require.NoError(t, err)

	pending, err := f.tickets.HasPending(ctx, vo.ItemTypeExercise, live.ID())
	require.NoError(t, err)
	assert.False(t, pending)

	// A fresh staged edit is accepted again once the slot is free.
	revision, err := live.NewRevision("Two Sum v3", "statement body", 1, "easy", 1000, 262144, nil)
	require.NoError(t, err)
	_, err = f.engine.Submit(ctx, appmod.SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationUpdate,
		ActorID: 7, CommentBody: "second attempt", Item: revision, OriginalID: live.ID(),
	})
	require.NoError(t, err)
}
