package services

import (
	"pawgrove/internal/models"
)

// ToggleReaction applies the one-reaction-per-user rule to c in place.
//
// If the user already reacted with kind, the reaction is removed. If they
// reacted with a different kind, it is switched. Otherwise the reaction is
// added. Exactly one of those happens per call, so repeating the same call
// flips the reaction off again.
func ToggleReaction(c *models.Comment, userID uint, kind string) {
	if c.Reactions == nil {
		c.Reactions = models.ReactionSet{}
	}
	current, ok := c.Reactions.KindOf(userID)
	if ok {
		c.Reactions.Remove(current, userID)
		if current == kind {
			return // un-react
		}
	}
	c.Reactions.Add(kind, userID)
}
