package models

import (
	"time"
)

// ContextType names the surface a discussion hangs off.
type ContextType string

const (
	ContextPost  ContextType = "post"
	ContextWiki  ContextType = "wiki"
	ContextPhoto ContextType = "photo"
)

// ValidContextType reports whether t is one of the known discussion surfaces.
func ValidContextType(t ContextType) bool {
	return t == ContextPost || t == ContextWiki || t == ContextPhoto
}

type CommentStatus string

const (
	StatusPublished CommentStatus = "published"
	StatusPending   CommentStatus = "pending"
	StatusHidden    CommentStatus = "hidden"
)

// ReactionSet maps a reaction kind to the ids of users who picked it.
// A user id appears in at most one kind's slice; the reaction ledger
// enforces that on every toggle.
type ReactionSet map[string][]uint

// KindOf returns the kind the user currently reacted with, if any.
func (r ReactionSet) KindOf(userID uint) (string, bool) {
	for kind, users := range r {
		for _, id := range users {
			if id == userID {
				return kind, true
			}
		}
	}
	return "", false
}

// Total sums reactions across all kinds.
func (r ReactionSet) Total() int {
	n := 0
	for _, users := range r {
		n += len(users)
	}
	return n
}

// Add records userID under kind. Callers must remove any previous
// reaction of the user first.
func (r ReactionSet) Add(kind string, userID uint) {
	r[kind] = append(r[kind], userID)
}

// Remove drops userID from kind, deleting the kind once empty.
func (r ReactionSet) Remove(kind string, userID uint) {
	users := r[kind]
	for i, id := range users {
		if id == userID {
			r[kind] = append(users[:i], users[i+1:]...)
			break
		}
	}
	if len(r[kind]) == 0 {
		delete(r, kind)
	}
}

// FlagEntry is one user's current standing report against a comment.
// A later flag from the same user replaces the entry wholesale.
type FlagEntry struct {
	UserID    uint      `json:"user_id"`
	Reason    string    `json:"reason"`
	Message   string    `json:"message,omitempty"`
	FlaggedAt time.Time `json:"flagged_at"`
}

// ModerationRecord is the audit record of the latest moderator action.
// Only the most recent action is retained.
type ModerationRecord struct {
	ModeratorID uint          `json:"moderator_id"`
	Status      CommentStatus `json:"status"`
	Note        string        `json:"note,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type Comment struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Cid         string            `gorm:"uniqueIndex;size:8;not null" json:"cid"`
	ContextType ContextType       `gorm:"size:20;not null;index:idx_comment_context" json:"context_type"`
	ContextID   uint              `gorm:"not null;index:idx_comment_context" json:"context_id"`
	UserID      uint              `gorm:"not null;index" json:"user_id"`
	User        User              `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID    *uint             `gorm:"index" json:"parent_id"` // Nullable for root comments
	Content     string            `gorm:"type:text;not null" json:"content"`
	ImageURL    string            `gorm:"size:500" json:"image_url,omitempty"`
	Status      CommentStatus     `gorm:"size:16;not null;default:'published';index" json:"status"`
	Reactions   ReactionSet       `gorm:"serializer:json" json:"reactions"`
	Flags       []FlagEntry       `gorm:"serializer:json" json:"flags"`
	Moderation  *ModerationRecord `gorm:"serializer:json" json:"moderation,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	EditedAt    *time.Time        `json:"edited_at,omitempty"` // Set only once the comment is edited
}
