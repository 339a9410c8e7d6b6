package note

import (
	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
)

type CreateNoteRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Body       string `json:"body" binding:"required,max=20000"`
	CategoryID uint   `json:"category_id" binding:"required"`
	Comment    string `json:"comment" binding:"required,max=2000"`
}

func (r *CreateNoteRequest) ToCommand(actorID uint, privileged bool) usecases.CreateNoteCommand {
	return usecases.CreateNoteCommand{
		Title:      r.Title,
		Body:       r.Body,
		CategoryID: r.CategoryID,
		Comment:    r.Comment,
		ActorID:    actorID,
		Privileged: privileged,
	}
}

type UpdateNoteRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Body       string `json:"body" binding:"required,max=20000"`
	CategoryID uint   `json:"category_id" binding:"required"`
	Comment    string `json:"comment" binding:"required,max=2000"`
}

func (r *UpdateNoteRequest) ToCommand(noteID, actorID uint, privileged bool) usecases.UpdateNoteCommand {
	return usecases.UpdateNoteCommand{
		NoteID:     noteID,
		Title:      r.Title,
		Body:       r.Body,
		CategoryID: r.CategoryID,
		Comment:    r.Comment,
		ActorID:    actorID,
		Privileged: privileged,
	}
}

type DeleteNoteRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
}
