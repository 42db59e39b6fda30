package services

import (
	"errors"

	"pawgrove/internal/models"
)

var (
	// ErrNotFound is returned when a mutation targets a comment or context
	// that the store does not know about.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned before the store is touched when the
	// acting user fails a permission predicate.
	ErrUnauthorized = errors.New("not allowed")
	// ErrInvalidParent is returned when a reply's parent lives in a
	// different context (or does not exist).
	ErrInvalidParent = errors.New("parent comment not in this context")
	// ErrBadTransition is returned for a moderation status change the
	// state machine does not permit.
	ErrBadTransition = errors.New("invalid status transition")
)

// CommentStore is the engine's sole source of truth for comment records.
// The engine performs no caching of its own.
type CommentStore interface {
	ListByContext(ctxType models.ContextType, ctxID uint) ([]models.Comment, error)
	Get(id uint) (*models.Comment, error)
	GetByCid(cid string) (*models.Comment, error)
	Create(c *models.Comment) error
	Update(c *models.Comment) error
	// Delete removes the given comments in one logical operation. The
	// engine always passes a full subtree.
	Delete(ids []uint) error
}

// ContextStore resolves and persists per-context discussion state
// (ownership and highlight slots).
type ContextStore interface {
	GetContext(ctxType models.ContextType, ctxID uint) (*models.DiscussionContext, error)
	SaveContext(ctx *models.DiscussionContext) error
}

// BlockOracle reports whether either user has blocked the other.
type BlockOracle interface {
	AreBlocked(a, b uint) (bool, error)
}

// RestrictionOracle reports whether an owner has soft-blocked a user.
type RestrictionOracle interface {
	IsRestricted(ownerID, userID uint) (bool, error)
}

// NotificationStore records reply notifications. Optional; the engine
// works without one.
type NotificationStore interface {
	CreateNotification(n *models.Notification) error
}
