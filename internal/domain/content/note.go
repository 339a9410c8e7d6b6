package content

import (
	"fmt"
	"time"
)

// Note is a training write-up attached to a category.
type Note struct {
	id         uint
	title      string
	body       string
	categoryID uint
	visible    bool
	createdBy  uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewNote(title, body string, categoryID uint, createdBy uint) (*Note, error) {
	if err := validateNoteFields(title, body, categoryID); err != nil {
		return nil, err
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()

	return &Note{
		title:      title,
		body:       body,
		categoryID: categoryID,
		createdBy:  createdBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewRevision builds a draft row with the proposed values, preserving the
// original's creation audit.
func (n *Note) NewRevision(title, body string, categoryID uint) (*Note, error) {
	if err := validateNoteFields(title, body, categoryID); err != nil {
		return nil, err
	}

	return &Note{
		title:      title,
		body:       body,
		categoryID: categoryID,
		createdBy:  n.createdBy,
		createdAt:  n.createdAt,
		updatedAt:  time.Now(),
	}, nil
}

func ReconstructNote(
	id uint,
	title, body string,
	categoryID uint,
	visible bool,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Note{
		id:         id,
		title:      title,
		body:       body,
		categoryID: categoryID,
		visible:    visible,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func validateNoteFields(title, body string, categoryID uint) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(body) == 0 {
		return fmt.Errorf("body is required")
	}
	if len(body) > 20000 {
		return fmt.Errorf("body exceeds maximum length of 20000 characters")
	}
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	return nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) Title() string {
	return n.title
}

func (n *Note) Body() string {
	return n.body
}

func (n *Note) CategoryID() uint {
	return n.categoryID
}

func (n *Note) Visible() bool {
	return n.visible
}

func (n *Note) CreatedBy() uint {
	return n.createdBy
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *Note) Publish() {
	n.visible = true
	n.updatedAt = time.Now()
}

func (n *Note) Hide() {
	n.visible = false
	n.updatedAt = time.Now()
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}
