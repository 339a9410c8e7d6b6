// Package content holds the published material of the site: exercises,
// notes and news. Every entity carries a visibility flag; rows with
// visible=false exist but are not publicly served, which is how shadow
// drafts awaiting approval are represented.
package content

// Item is the common surface the moderation engine needs from any
// content entity, regardless of its concrete type.
type Item interface {
	ID() uint
	Title() string
	Visible() bool
	Publish()
	Hide()
	SetID(id uint) error
}
