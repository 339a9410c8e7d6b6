package dto

import (
	"time"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
)

type ExerciseDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Statement     string    `json:"statement"`
	CategoryID    uint      `json:"category_id"`
	Difficulty    string    `json:"difficulty"`
	TimeLimitMS   int       `json:"time_limit_ms"`
	MemoryLimitKB int       `json:"memory_limit_kb"`
	Tags          []string  `json:"tags"`
	Visible       bool      `json:"visible"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromExercise(e *content.Exercise) ExerciseDTO {
	return ExerciseDTO{
		ID:            e.ID(),
		Title:         e.Title(),
		Statement:     e.Statement(),
		CategoryID:    e.CategoryID(),
		Difficulty:    e.Difficulty().String(),
		TimeLimitMS:   e.TimeLimitMS(),
		MemoryLimitKB: e.MemoryLimitKB(),
		Tags:          e.Tags(),
		Visible:       e.Visible(),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}
}

func FromExercises(exercises []*content.Exercise) []ExerciseDTO {
	dtos := make([]ExerciseDTO, 0, len(exercises))
	for _, e := range exercises {
		dtos = append(dtos, FromExercise(e))
	}
	return dtos
}

type NoteDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CategoryID uint      `json:"category_id"`
	Visible    bool      `json:"visible"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromNote(n *content.Note) NoteDTO {
	return NoteDTO{
		ID:         n.ID(),
		Title:      n.Title(),
		Body:       n.Body(),
		CategoryID: n.CategoryID(),
		Visible:    n.Visible(),
		CreatedAt:  n.CreatedAt(),
		UpdatedAt:  n.UpdatedAt(),
	}
}

func FromNotes(notes []*content.Note) []NoteDTO {
	dtos := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		dtos = append(dtos, FromNote(n))
	}
	return dtos
}

type NewsDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url,omitempty"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromNews(n *content.News) NewsDTO {
	return NewsDTO{
		ID:        n.ID(),
		Title:     n.Title(),
		Body:      n.Body(),
		ImageURL:  n.ImageURL(),
		Visible:   n.Visible(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}
}

func FromNewsList(items []*content.News) []NewsDTO {
	dtos := make([]NewsDTO, 0, len(items))
	for _, n := range items {
		dtos = append(dtos, FromNews(n))
	}
	return dtos
}

type CategoryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCategory(c *content.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func FromCategories(categories []*content.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, FromCategory(c))
	}
	return dtos
}
