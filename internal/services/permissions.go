package services

import (
	"pawgrove/internal/models"
)

// Permission predicates are pure and stateless so the whole authorization
// surface stays enumerable. Every engine mutation checks one of these
// before touching the store.

// CanEdit allows only the author to edit. There is no time window.
func CanEdit(c *models.Comment, actor *models.User) bool {
	return actor != nil && actor.ID == c.UserID
}

// CanDelete allows the author, a moderator, or the context owner.
func CanDelete(c *models.Comment, actor *models.User, ownerID uint) bool {
	if actor == nil {
		return false
	}
	return actor.ID == c.UserID || actor.IsModerator() || actor.ID == ownerID
}

// CanModerate allows moderators and the context owner.
func CanModerate(actor *models.User, ownerID uint) bool {
	if actor == nil {
		return false
	}
	return actor.IsModerator() || actor.ID == ownerID
}
