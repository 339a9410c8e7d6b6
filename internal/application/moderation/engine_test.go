package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	contentvo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/content/valueobjects"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
)

type engineFixture struct {
	engine   *Engine
	tickets  *memTicketRepo
	comments *memCommentRepo
	store    *memStore
	notifier *captureNotifier
}

func newEngineFixture(itemType vo.ItemType) *engineFixture {
	tickets := newMemTicketRepo()
	comments := newMemCommentRepo()
	store := newMemStore()
	notifier := newCaptureNotifier()

	registry := Registry{itemType: store}

	return &engineFixture{
		engine:   NewEngine(tickets, comments, registry, passthroughTxManager{}, notifier, testLogger()),
		tickets:  tickets,
		comments: comments,
		store:    store,
		notifier: notifier,
	}
}

func newTestExercise(t *testing.T, title string) *content.Exercise {
	t.Helper()
	exercise, err := content.NewExercise(title, "statement body", 1, contentvo.DifficultyEasy, 1000, 262144, nil, 7)
	require.NoError(t, err)
	return exercise
}

func seedExercise(t *testing.T, f *engineFixture, title string) *content.Exercise {
	t.Helper()
	exercise := newTestExercise(t, title)
	exercise.Publish()
	require.NoError(t, f.store.Insert(context.Background(), exercise))
	return exercise
}

func TestEngine_Submit_StagedUpdate(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	live := seedExercise(t, f, "Two Sum")

	revision, err := live.NewRevision("Two Sum v2", "statement body", 1, contentvo.DifficultyEasy, 1000, 262144, nil)
	require.NoError(t, err)

	ticket, err := f.engine.Submit(ctx, SubmitCommand{
		ItemType:    vo.ItemTypeExercise,
		Operation:   vo.OperationUpdate,
		Privileged:  false,
		ActorID:     7,
		CommentBody: "rename for clarity",
		Item:        revision,
		OriginalID:  live.ID(),
	})
	require.NoError(t, err)

	assert.True(t, ticket.Status().IsPending())
	assert.Equal(t, live.ID(), ticket.OriginalID())
	require.NotNil(t, ticket.ModifiedID())
	assert.NotEqual(t, live.ID(), *ticket.ModifiedID())

	shadow, err := f.store.FindByID(ctx, *ticket.ModifiedID())
	require.NoError(t, err)
	assert.False(t, shadow.Visible())
	assert.Equal(t, "Two Sum v2", shadow.Title())

	original, err := f.store.FindByID(ctx, live.ID())
	require.NoError(t, err)
	assert.True(t, original.Visible())
	assert.Equal(t, "Two Sum", original.Title())

	pending, err := f.engine.HasPendingTicket(ctx, vo.ItemTypeExercise, live.ID())
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestEngine_Submit_PrivilegedCreate(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeNews)
	ctx := context.Background()

	item, err := content.NewNews("Contest results", "body", "", 3)
	require.NoError(t, err)

	ticket, err := f.engine.Submit(ctx, SubmitCommand{
		ItemType:    vo.ItemTypeNews,
		Operation:   vo.OperationCreate,
		Privileged:  true,
		ActorID:     3,
		CommentBody: "publishing results",
		Item:        item,
	})
	require.NoError(t, err)

	assert.True(t, ticket.Status().IsAccepted())
	assert.Equal(t, item.ID(), ticket.OriginalID())
	assert.Nil(t, ticket.ModifiedID())

	stored, err := f.store.FindByID(ctx, item.ID())
	require.NoError(t, err)
	assert.True(t, stored.Visible())
}

func TestEngine_Submit_UnprivilegedCreate(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	item := newTestExercise(t, "Graph Coloring")

	ticket, err := f.engine.Submit(ctx, SubmitCommand{
		ItemType:    vo.ItemTypeExercise,
		Operation:   vo.OperationCreate,
		Privileged:  false,
		ActorID:     7,
		CommentBody: "new exercise proposal",
		Item:        item,
	})
	require.NoError(t, err)

	assert.True(t, ticket.Status().IsPending())

	stored, err := f.store.FindByID(ctx, item.ID())
	require.NoError(t, err)
	assert.False(t, stored.Visible())
}

func TestEngine_Submit_PendingGuard(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	live := seedExercise(t, f, "Two Sum")

	first, err := live.NewRevision("Two Sum v2", "statement body", 1, contentvo.DifficultyEasy, 1000, 262144, nil)
	require.NoError(t, err)
	_, err = f.engine.Submit(ctx, SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationUpdate,
		ActorID: 7, CommentBody: "first edit", Item: first, OriginalID: live.ID(),
	})
	require.NoError(t, err)

	second, err := live.NewRevision("Two Sum v3", "statement body", 1, contentvo.DifficultyEasy, 1000, 262144, nil)
	require.NoError(t, err)
	_, err = f.engine.Submit(ctx, SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationUpdate,
		ActorID: 8, CommentBody: "second edit", Item: second, OriginalID: live.ID(),
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflictError(err))

	// Only the first shadow row exists alongside the live row.
	assert.Equal(t, 2, f.store.len())
}

func TestEngine_Submit_UpdateMissingItem(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)

	revision := newTestExercise(t, "Ghost")

	_, err := f.engine.Submit(context.Background(), SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationUpdate,
		ActorID: 7, CommentBody: "edit", Item: revision, OriginalID: 404,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestEngine_Submit_DuplicateTitle(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	f.store.uniqueTitles = true
	ctx := context.Background()

	seedExercise(t, f, "Two Sum")

	duplicate := newTestExercise(t, "Two Sum")
	_, err := f.engine.Submit(ctx, SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationCreate,
		Privileged: true, ActorID: 3, CommentBody: "duplicate", Item: duplicate,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflictError(err))
}

func TestEngine_Submit_PrivilegedDelete(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	live := seedExercise(t, f, "Obsolete")

	ticket, err := f.engine.Submit(ctx, SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationDelete,
		Privileged: true, ActorID: 3, CommentBody: "removing broken exercise",
		OriginalID: live.ID(),
	})
	require.NoError(t, err)

	assert.True(t, ticket.Status().IsAccepted())
	_, err = f.store.FindByID(ctx, live.ID())
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestEngine_Submit_UnprivilegedDelete(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	live := seedExercise(t, f, "Questionable")

	ticket, err := f.engine.Submit(ctx, SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationDelete,
		ActorID: 7, CommentBody: "please remove", OriginalID: live.ID(),
	})
	require.NoError(t, err)

	assert.True(t, ticket.Status().IsPending())
	assert.Nil(t, ticket.ModifiedID())

	stored, err := f.store.FindByID(ctx, live.ID())
	require.NoError(t, err)
	assert.True(t, stored.Visible())
}

func TestEngine_Submit_Validation(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  SubmitCommand
	}{
		{"missing comment", SubmitCommand{
			ItemType: vo.ItemTypeExercise, Operation: vo.OperationCreate,
			ActorID: 7, Item: newTestExercise(t, "A"),
		}},
		{"missing actor", SubmitCommand{
			ItemType: vo.ItemTypeExercise, Operation: vo.OperationCreate,
			CommentBody: "c", Item: newTestExercise(t, "B"),
		}},
		{"missing item payload", SubmitCommand{
			ItemType: vo.ItemTypeExercise, Operation: vo.OperationCreate,
			ActorID: 7, CommentBody: "c",
		}},
		{"non content item type", SubmitCommand{
			ItemType: vo.ItemTypeUtils, Operation: vo.OperationCreate,
			ActorID: 7, CommentBody: "c", Item: newTestExercise(t, "C"),
		}},
		{"delete without target", SubmitCommand{
			ItemType: vo.ItemTypeExercise, Operation: vo.OperationDelete,
			ActorID: 7, CommentBody: "c",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.Submit(ctx, tt.cmd)
			require.Error(t, err)
			assert.True(t, appErrors.IsValidationError(err))
		})
	}
}

func TestEngine_Submit_NotifiesOnStaged(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	item := newTestExercise(t, "Segment Trees")
	ticket, err := f.engine.Submit(ctx, SubmitCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationCreate,
		ActorID: 7, CommentBody: "please review", Item: item,
	})
	require.NoError(t, err)

	select {
	case event := <-f.notifier.events:
		assert.Equal(t, NotificationCauseSubmitted, event.Cause)
		assert.Equal(t, ticket.ID(), event.TicketID)
		assert.Equal(t, "Segment Trees", event.Title)
	case <-time.After(time.Second):
		t.Fatal("expected a notification for the staged submission")
	}
}

func TestEngine_Submit_NoNotificationWhenPrivileged(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeNews)
	ctx := context.Background()

	item, err := content.NewNews("Announcement", "body", "", 3)
	require.NoError(t, err)

	_, err = f.engine.Submit(ctx, SubmitCommand{
		ItemType: vo.ItemTypeNews, Operation: vo.OperationCreate,
		Privileged: true, ActorID: 3, CommentBody: "direct publish", Item: item,
	})
	require.NoError(t, err)

	select {
	case event := <-f.notifier.events:
		t.Fatalf("unexpected notification %v for a privileged submission", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngine_RecordAccepted(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)
	ctx := context.Background()

	replacement := uint(2)
	ticket, err := f.engine.RecordAccepted(ctx, RecordAcceptedCommand{
		ItemType:    vo.ItemTypeUtils,
		Operation:   vo.OperationDelete,
		OriginalID:  1,
		OtherID:     &replacement,
		CommentBody: "category removed, exercises moved",
		ActorID:     3,
	})
	require.NoError(t, err)

	assert.True(t, ticket.Status().IsAccepted())
	require.NotNil(t, ticket.OtherID())
	assert.Equal(t, replacement, *ticket.OtherID())
}

func TestEngine_RecordAccepted_RejectsReviewedTypes(t *testing.T) {
	f := newEngineFixture(vo.ItemTypeExercise)

	_, err := f.engine.RecordAccepted(context.Background(), RecordAcceptedCommand{
		ItemType: vo.ItemTypeExercise, Operation: vo.OperationDelete,
		OriginalID: 1, CommentBody: "c", ActorID: 3,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidationError(err))
}
