package exercise

import (
	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
)

type CreateExerciseRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Statement     string   `json:"statement" binding:"required,max=20000"`
	CategoryID    uint     `json:"category_id" binding:"required"`
	Difficulty    string   `json:"difficulty" binding:"required"`
	TimeLimitMS   int      `json:"time_limit_ms" binding:"required,gt=0"`
	MemoryLimitKB int      `json:"memory_limit_kb" binding:"required,gt=0"`
	Tags          []string `json:"tags,omitempty"`
	Comment       string   `json:"comment" binding:"required,max=2000"`
}

func (r *CreateExerciseRequest) ToCommand(actorID uint, privileged bool) usecases.CreateExerciseCommand {
	return usecases.CreateExerciseCommand{
		Title:         r.Title,
		Statement:     r.Statement,
		CategoryID:    r.CategoryID,
		Difficulty:    r.Difficulty,
		TimeLimitMS:   r.TimeLimitMS,
		MemoryLimitKB: r.MemoryLimitKB,
		Tags:          r.Tags,
		Comment:       r.Comment,
		ActorID:       actorID,
		Privileged:    privileged,
	}
}

type UpdateExerciseRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Statement     string   `json:"statement" binding:"required,max=20000"`
	CategoryID    uint     `json:"category_id" binding:"required"`
	Difficulty    string   `json:"difficulty" binding:"required"`
	TimeLimitMS   int      `json:"time_limit_ms" binding:"required,gt=0"`
	MemoryLimitKB int      `json:"memory_limit_kb" binding:"required,gt=0"`
	Tags          []string `json:"tags,omitempty"`
	Comment       string   `json:"comment" binding:"required,max=2000"`
}

func (r *UpdateExerciseRequest) ToCommand(exerciseID, actorID uint, privileged bool) usecases.UpdateExerciseCommand {
	return usecases.UpdateExerciseCommand{
		ExerciseID:    exerciseID,
		Title:         r.Title,
		Statement:     r.Statement,
		CategoryID:    r.CategoryID,
		Difficulty:    r.Difficulty,
		TimeLimitMS:   r.TimeLimitMS,
		MemoryLimitKB: r.MemoryLimitKB,
		Tags:          r.Tags,
		Comment:       r.Comment,
		ActorID:       actorID,
		Privileged:    privileged,
	}
}

type DeleteExerciseRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
}
