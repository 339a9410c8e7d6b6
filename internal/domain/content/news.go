package content

import (
	"fmt"
	"time"
)

// News is a front-page announcement with an optional cover image.
type News struct {
	id        uint
	title     string
	body      string
	imageURL  string
	visible   bool
	createdBy uint
	createdAt time.Time
	updatedAt time.Time
}

func NewNews(title, body, imageURL string, createdBy uint) (*News, error) {
	if err := validateNewsFields(title, body, imageURL); err != nil {
		return nil, err
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()

	return &News{
		title:     title,
		body:      body,
		imageURL:  imageURL,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewRevision builds a draft row with the proposed values, preserving the
// original's creation audit.
func (n *News) NewRevision(title, body, imageURL string) (*News, error) {
	if err := validateNewsFields(title, body, imageURL); err != nil {
		return nil, err
	}

	return &News{
		title:     title,
		body:      body,
		imageURL:  imageURL,
		createdBy: n.createdBy,
		createdAt: n.createdAt,
		updatedAt: time.Now(),
	}, nil
}

func ReconstructNews(
	id uint,
	title, body, imageURL string,
	visible bool,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*News, error) {
	if id == 0 {
		return nil, fmt.Errorf("news ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &News{
		id:        id,
		title:     title,
		body:      body,
		imageURL:  imageURL,
		visible:   visible,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func validateNewsFields(title, body, imageURL string) error {
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
	if len(imageURL) > 500 {
		return fmt.Errorf("image URL exceeds maximum length of 500 characters")
	}
	return nil
}

func (n *News) ID() uint {
	return n.id
}

func (n *News) Title() string {
	return n.title
}

func (n *News) Body() string {
	return n.body
}

func (n *News) ImageURL() string {
	return n.imageURL
}

func (n *News) Visible() bool {
	return n.visible
}

func (n *News) CreatedBy() uint {
	return n.createdBy
}

func (n *News) CreatedAt() time.Time {
	return n.createdAt
}

func (n *News) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *News) Publish() {
	n.visible = true
	n.updatedAt = time.Now()
}

func (n *News) Hide() {
	n.visible = false
	n.updatedAt = time.Now()
}

func (n *News) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("news ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("news ID cannot be zero")
	}
	n.id = id
	return nil
}
