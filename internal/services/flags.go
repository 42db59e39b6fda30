package services

import (
	"time"

	"pawgrove/internal/models"
)

// ApplyFlag records the user's standing report against c, replacing any
// earlier flag from the same user wholesale (including FlaggedAt, since the
// entry represents their current report). The reason is opaque to the
// ledger; the HTTP edge validates it against the closed set.
func ApplyFlag(c *models.Comment, userID uint, reason, message string) {
	entry := models.FlagEntry{
		UserID:    userID,
		Reason:    reason,
		Message:   message,
		FlaggedAt: time.Now(),
	}
	for i := range c.Flags {
		if c.Flags[i].UserID == userID {
			c.Flags[i] = entry
			return
		}
	}
	c.Flags = append(c.Flags, entry)
}
