package moderation

import (
	"fmt"
	"strings"
	"time"
)

// Comment is an immutable audit note attached to a ticket. It is created
// once per moderation event and deleted only when explicitly orphaned.
type Comment struct {
	id        uint
	body      string
	createdAt time.Time
}

func NewComment(body string) (*Comment, error) {
	body = strings.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("comment body is required")
	}
	if len(body) > 2000 {
		return nil, fmt.Errorf("comment body exceeds maximum length of 2000 characters")
	}

	return &Comment{
		body:      body,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(id uint, body string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("comment body is required")
	}

	return &Comment{
		id:        id,
		body:      body,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
