package services

import (
	"time"

	"pawgrove/internal/models"
)

// transitions is the closed set of moderation moves. Creation handles the
// initial published/pending choice; everything after that goes through
// here.
var transitions = map[models.CommentStatus]map[models.CommentStatus]bool{
	models.StatusPending: {
		models.StatusPublished: true,
		models.StatusHidden:    true,
	},
	models.StatusPublished: {
		models.StatusHidden: true,
	},
	models.StatusHidden: {
		models.StatusPublished: true,
	},
}

// CanTransition reports whether the state machine permits from → to.
func CanTransition(from, to models.CommentStatus) bool {
	return transitions[from][to]
}

// Moderate moves c to the requested status, recording the audit record and
// optionally clearing flags. The audit record overwrites any prior one;
// only the latest action is retained. Clearing flags is caller-supplied,
// never automatic.
func Moderate(c *models.Comment, actor *models.User, ownerID uint, to models.CommentStatus, note string, clearFlags bool) error {
	if !CanModerate(actor, ownerID) {
		return ErrUnauthorized
	}
	if !CanTransition(c.Status, to) {
		return ErrBadTransition
	}
	c.Status = to
	c.Moderation = &models.ModerationRecord{
		ModeratorID: actor.ID,
		Status:      to,
		Note:        note,
		UpdatedAt:   time.Now(),
	}
	if clearFlags {
		c.Flags = nil
	}
	return nil
}

// QuickApprove is the owner/moderator shortcut for pending → published.
// Unlike Moderate it leaves no audit record and never touches flags.
func QuickApprove(c *models.Comment, actor *models.User, ownerID uint) error {
	if !CanModerate(actor, ownerID) {
		return ErrUnauthorized
	}
	if c.Status != models.StatusPending {
		return ErrBadTransition
	}
	c.Status = models.StatusPublished
	return nil
}
