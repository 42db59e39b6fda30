package services

import (
	"log"

	"pawgrove/internal/models"
)

// notifyReply records a notification for the parent comment's author when
// someone replies. Self-replies and blocked pairs are skipped. Failures are
// logged and swallowed: a lost notification must not fail the comment.
func (e *Engine) notifyReply(parent, reply *models.Comment) {
	if e.notes == nil || parent == nil || parent.UserID == reply.UserID {
		return
	}
	if e.blocks != nil {
		blocked, err := e.blocks.AreBlocked(parent.UserID, reply.UserID)
		if err != nil || blocked {
			return
		}
	}
	actorID := reply.UserID
	n := &models.Notification{
		UserID:    parent.UserID,
		ActorID:   &actorID,
		Type:      models.NotificationTypeReply,
		CommentID: reply.ID,
	}
	if err := e.notes.CreateNotification(n); err != nil {
		log.Printf("Failed to create reply notification: %v", err)
	}
}
