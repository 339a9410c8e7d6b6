package content

import (
	"fmt"
	"time"

	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/content/valueobjects"
)

// Exercise is a competitive-programming problem with a markdown statement
// and judging limits.
type Exercise struct {
	id            uint
	title         string
	statement     string
	categoryID    uint
	difficulty    vo.Difficulty
	timeLimitMS   int
	memoryLimitKB int
	tags          []string
	visible       bool
	createdBy     uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewExercise(
	title string,
	statement string,
	categoryID uint,
	difficulty vo.Difficulty,
	timeLimitMS int,
	memoryLimitKB int,
	tags []string,
	createdBy uint,
) (*Exercise, error) {
	if err := validateExerciseFields(title, statement, categoryID, difficulty, timeLimitMS, memoryLimitKB); err != nil {
		return nil, err
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	if tags == nil {
		tags = []string{}
	}

	now := time.Now()

	return &Exercise{
		title:         title,
		statement:     statement,
		categoryID:    categoryID,
		difficulty:    difficulty,
		timeLimitMS:   timeLimitMS,
		memoryLimitKB: memoryLimitKB,
		tags:          tags,
		createdBy:     createdBy,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewRevision builds a draft row carrying the proposed field values while
// preserving the original's creation audit. The returned exercise has no
// identity yet; the caller decides its visibility.
func (e *Exercise) NewRevision(
	title string,
	statement string,
	categoryID uint,
	difficulty vo.Difficulty,
	timeLimitMS int,
	memoryLimitKB int,
	tags []string,
) (*Exercise, error) {
	if err := validateExerciseFields(title, statement, categoryID, difficulty, timeLimitMS, memoryLimitKB); err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []string{}
	}

	return &Exercise{
		title:         title,
		statement:     statement,
		categoryID:    categoryID,
		difficulty:    difficulty,
		timeLimitMS:   timeLimitMS,
		memoryLimitKB: memoryLimitKB,
		tags:          tags,
		createdBy:     e.createdBy,
		createdAt:     e.createdAt,
		updatedAt:     time.Now(),
	}, nil
}

func ReconstructExercise(
	id uint,
	title string,
	statement string,
	categoryID uint,
	difficulty vo.Difficulty,
	timeLimitMS int,
	memoryLimitKB int,
	tags []string,
	visible bool,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Exercise, error) {
	if id == 0 {
		return nil, fmt.Errorf("exercise ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("invalid difficulty")
	}

	if tags == nil {
		tags = []string{}
	}

	return &Exercise{
		id:            id,
		title:         title,
		statement:     statement,
		categoryID:    categoryID,
		difficulty:    difficulty,
		timeLimitMS:   timeLimitMS,
		memoryLimitKB: memoryLimitKB,
		tags:          tags,
		visible:       visible,
		createdBy:     createdBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func validateExerciseFields(
	title, statement string,
	categoryID uint,
	difficulty vo.Difficulty,
	timeLimitMS, memoryLimitKB int,
) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(statement) == 0 {
		return fmt.Errorf("statement is required")
	}
	if len(statement) > 20000 {
		return fmt.Errorf("statement exceeds maximum length of 20000 characters")
	}
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if !difficulty.IsValid() {
		return fmt.Errorf("invalid difficulty")
	}
	if timeLimitMS <= 0 {
		return fmt.Errorf("time limit must be positive")
	}
	if memoryLimitKB <= 0 {
		return fmt.Errorf("memory limit must be positive")
	}
	return nil
}

func (e *Exercise) ID() uint {
	return e.id
}

func (e *Exercise) Title() string {
	return e.title
}

func (e *Exercise) Statement() string {
	return e.statement
}

func (e *Exercise) CategoryID() uint {
	return e.categoryID
}

func (e *Exercise) Difficulty() vo.Difficulty {
	return e.difficulty
}

func (e *Exercise) TimeLimitMS() int {
	return e.timeLimitMS
}

func (e *Exercise) MemoryLimitKB() int {
	return e.memoryLimitKB
}

func (e *Exercise) Tags() []string {
	tagsCopy := make([]string, len(e.tags))
	copy(tagsCopy, e.tags)
	return tagsCopy
}

func (e *Exercise) Visible() bool {
	return e.visible
}

func (e *Exercise) CreatedBy() uint {
	return e.createdBy
}

func (e *Exercise) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Exercise) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Exercise) Publish() {
	e.visible = true
	e.updatedAt = time.Now()
}

func (e *Exercise) Hide() {
	e.visible = false
	e.updatedAt = time.Now()
}

func (e *Exercise) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("exercise ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("exercise ID cannot be zero")
	}
	e.id = id
	return nil
}
