package news

import (
	usecases "github.com/IYair/disclosure-page-uac-sub000/internal/application/content/usecases"
)

type CreateNewsRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required,max=20000"`
	ImageURL string `json:"image_url" binding:"omitempty,max=500"`
	Comment  string `json:"comment" binding:"required,max=2000"`
}

func (r *CreateNewsRequest) ToCommand(actorID uint, privileged bool) usecases.CreateNewsCommand {
	return usecases.CreateNewsCommand{
		Title:      r.Title,
		Body:       r.Body,
		ImageURL:   r.ImageURL,
		Comment:    r.Comment,
		ActorID:    actorID,
		Privileged: privileged,
	}
}

type UpdateNewsRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required,max=20000"`
	ImageURL string `json:"image_url" binding:"omitempty,max=500"`
	Comment  string `json:"comment" binding:"required,max=2000"`
}

func (r *UpdateNewsRequest) ToCommand(newsID, actorID uint, privileged bool) usecases.UpdateNewsCommand {
	return usecases.UpdateNewsCommand{
		NewsID:     newsID,
		Title:      r.Title,
		Body:       r.Body,
		ImageURL:   r.ImageURL,
		Comment:    r.Comment,
		ActorID:    actorID,
		Privileged: privileged,
	}
}

type DeleteNewsRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
}
