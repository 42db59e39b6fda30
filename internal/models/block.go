package models

import (
	"time"
)

// Block hides two users from each other. Visibility treats the pair as
// mutually opaque regardless of which side created the row.
type Block struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_block_pair" json:"user_id"`
	BlockedID uint      `gorm:"not null;index;uniqueIndex:idx_block_pair" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Restriction is a context owner's soft block: new comments by the
// restricted user in that owner's contexts start out pending.
type Restriction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;index;uniqueIndex:idx_restriction_pair" json:"owner_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_restriction_pair" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
