// Package moderation orchestrates the review workflow: staging content
// mutations behind tickets, and resolving those tickets by approving or
// rejecting them.
package moderation

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/content"
	vo "github.com/IYair/disclosure-page-uac-sub000/internal/domain/moderation/valueobjects"
)

// ContentStore is the narrow CRUD capability the engine needs over one
// content table. No moderation logic lives behind it.
type ContentStore interface {
	FindByID(ctx context.Context, id uint) (content.Item, error)
	Insert(ctx context.Context, item content.Item) error
	Update(ctx context.Context, id uint, item content.Item) error
	SetVisible(ctx context.Context, id uint, visible bool) error
	Delete(ctx context.Context, id uint) error
	// CheckPublishable reports a ConflictError when making the item
	// visible would collide with a live row on the type's natural key.
	// excludeID names a row about to be superseded, ignored by the check.
	CheckPublishable(ctx context.Context, item content.Item, excludeID uint) error
}

// StoreRegistry dispatches to the content store owning a given item type.
type StoreRegistry interface {
	Lookup(itemType vo.ItemType) (ContentStore, bool)
}

// TxManager abstracts the context-carried transaction wrapper so the
// engine and lifecycle use cases can be tested without a database.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationEvent describes a moderation outcome worth surfacing to
// reviewers or authors.
type NotificationEvent struct {
	Cause    string
	TicketID uint
	ItemType vo.ItemType
	Title    string
}

const (
	NotificationCauseSubmitted = "submitted"
	NotificationCauseApproved  = "approved"
	NotificationCauseRejected  = "rejected"
)

// Notifier delivers moderation events. Best effort: callers dispatch it
// detached and only log failures.
type Notifier interface {
	Notify(ctx context.Context, event NotificationEvent) error
}

// Registry is the map-backed StoreRegistry used in production wiring.
type Registry map[vo.ItemType]ContentStore

func (r Registry) Lookup(itemType vo.ItemType) (ContentStore, bool) {
	store, ok := r[itemType]
	return store, ok
}
