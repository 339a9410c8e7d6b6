package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/services/markdown"
)

func newCreateExerciseCommand(categoryID uint) CreateExerciseCommand {
	return CreateExerciseCommand{
		Title:         "Two Sum",
		Statement:     "Given an array of integers, find two that sum to the target.",
		CategoryID:    categoryID,
		Difficulty:    "easy",
		TimeLimitMS:   1000,
		MemoryLimitKB: 65536,
		Tags:          []string{"arrays"},
		Comment:       "first submission",
		ActorID:       7,
	}
}

func TestCreateExerciseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("unprivileged actor gets a hidden draft and a pending ticket", func(t *testing.T) {
		f := newContentFixture()
		category := f.seedCategory(t, "Algorithms")
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		result, err := uc.Execute(ctx, newCreateExerciseCommand(category.ID()))
		require.NoError(t, err)
		require.NotZero(t, result.ExerciseID)

		stored := f.exercises.get(result.ExerciseID)
		require.NotNil(t, stored)
		assert.False(t, stored.Visible())

		assert.Equal(t, "pending", result.Ticket.Status)
		assert.Equal(t, "exercise", result.Ticket.ItemType)
		assert.Equal(t, "create", result.Ticket.Operation)
		assert.Equal(t, result.ExerciseID, result.Ticket.OriginalID)
		assert.Equal(t, "first submission", f.comments.body(result.Ticket.CommentID))
	})

	t.Run("privileged actor publishes immediately under an accepted ticket", func(t *testing.T) {
		f := newContentFixture()
		category := f.seedCategory(t, "Algorithms")
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		cmd := newCreateExerciseCommand(category.ID())
		cmd.Privileged = true

		result, err := uc.Execute(ctx, cmd)
		require.NoError(t, err)

		stored := f.exercises.get(result.ExerciseID)
		require.NotNil(t, stored)
		assert.True(t, stored.Visible())
		assert.Equal(t, "accepted", result.Ticket.Status)
	})

	t.Run("sanitizes the statement markup", func(t *testing.T) {
		f := newContentFixture()
		category := f.seedCategory(t, "Algorithms")
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		cmd := newCreateExerciseCommand(category.ID())
		cmd.Statement = `Sort the array.<script>alert("x")</script>`

		result, err := uc.Execute(ctx, cmd)
		require.NoError(t, err)

		stored := f.exercises.get(result.ExerciseID)
		assert.NotContains(t, stored.Statement(), "<script>")
		assert.Contains(t, stored.Statement(), "Sort the array.")
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		f := newContentFixture()
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		_, err := uc.Execute(ctx, newCreateExerciseCommand(999))
		require.Error(t, err)
		assert.True(t, appErrors.IsNotFoundError(err))
	})

	t.Run("rejects a duplicate visible title in the category", func(t *testing.T) {
		f := newContentFixture()
		category := f.seedCategory(t, "Algorithms")
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		first := newCreateExerciseCommand(category.ID())
		first.Privileged = true
		_, err := uc.Execute(ctx, first)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, newCreateExerciseCommand(category.ID()))
		require.Error(t, err)
		assert.True(t, appErrors.IsConflictError(err))
	})

	t.Run("allows the same title in another category", func(t *testing.T) {
		f := newContentFixture()
		first := f.seedCategory(t, "Algorithms")
		second := f.seedCategory(t, "Data Structures")
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		cmd := newCreateExerciseCommand(first.ID())
		cmd.Privileged = true
		_, err := uc.Execute(ctx, cmd)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, newCreateExerciseCommand(second.ID()))
		assert.NoError(t, err)
	})

	t.Run("rejects an invalid difficulty", func(t *testing.T) {
		f := newContentFixture()
		category := f.seedCategory(t, "Algorithms")
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		cmd := newCreateExerciseCommand(category.ID())
		cmd.Difficulty = "impossible"

		_, err := uc.Execute(ctx, cmd)
		require.Error(t, err)
		assert.True(t, appErrors.IsValidationError(err))
	})

	t.Run("requires a comment describing the change", func(t *testing.T) {
		f := newContentFixture()
		category := f.seedCategory(t, "Algorithms")
		uc := NewCreateExerciseUseCase(f.exercises, f.categories, f.engine, markdown.NewMarkdownService(), testLogger())

		cmd := newCreateExerciseCommand(category.ID())
		cmd.Comment = ""

		_, err := uc.Execute(ctx, cmd)
		require.Error(t, err)
		assert.True(t, appErrors.IsValidationError(err))
	})
}
