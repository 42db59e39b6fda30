package models

import (
	"time"
)

// DiscussionContext is the per-surface discussion state: who owns the
// surface and which comments are promoted. Highlight ids live here, not on
// the comment, so a context can never promote more than one of each.
type DiscussionContext struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	ContextType         ContextType `gorm:"size:20;not null;uniqueIndex:idx_discussion_ref" json:"context_type"`
	ContextID           uint        `gorm:"not null;uniqueIndex:idx_discussion_ref" json:"context_id"`
	OwnerID             uint        `gorm:"not null;index" json:"owner_id"`
	PinnedCommentID     *uint       `json:"pinned_comment_id"`
	BestAnswerCommentID *uint       `json:"best_answer_comment_id"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
