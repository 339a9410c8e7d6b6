package valueobjects

import "fmt"

// ItemType discriminates which kind of record a ticket moderates.
// Exercise, note and news are content types with their own repositories;
// utils and user cover reference-data and account changes that always
// auto-accept.
type ItemType string

const (
	ItemTypeExercise ItemType = "exercise"
	ItemTypeNote     ItemType = "note"
	ItemTypeNews     ItemType = "news"
	ItemTypeUtils    ItemType = "utils"
	ItemTypeUser     ItemType = "user"
)

var validItemTypes = map[ItemType]bool{
	ItemTypeExercise: true,
	ItemTypeNote:     true,
	ItemTypeNews:     true,
	ItemTypeUtils:    true,
	ItemTypeUser:     true,
}

func (it ItemType) String() string {
	return string(it)
}

func (it ItemType) IsValid() bool {
	return validItemTypes[it]
}

// IsContent reports whether the type is served through a content repository
// and participates in the shadow-copy staging protocol.
func (it ItemType) IsContent() bool {
	return it == ItemTypeExercise || it == ItemTypeNote || it == ItemTypeNews
}

// AlwaysAccepts reports whether tickets of this type are created in the
// accepted state regardless of actor privilege.
func (it ItemType) AlwaysAccepts() bool {
	return it == ItemTypeUtils || it == ItemTypeUser
}

func NewItemType(s string) (ItemType, error) {
	it := ItemType(s)
	if !it.IsValid() {
		return "", fmt.Errorf("invalid item type: %s", s)
	}
	return it, nil
}
