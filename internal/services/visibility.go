package services

import (
	"pawgrove/internal/models"
)

// Viewer identifies the requesting user for visibility decisions.
// A nil *Viewer means an anonymous reader.
type Viewer struct {
	ID         uint
	Role       string
	BlockedIDs map[uint]bool
}

// IsModerator reports whether the viewer holds a site-wide moderation role.
func (v *Viewer) IsModerator() bool {
	return v != nil && (v.Role == models.RoleAdmin || v.Role == models.RoleModerator)
}

// ViewerFor builds a Viewer from an authenticated user and their block list.
func ViewerFor(u *models.User, blockedIDs []uint) *Viewer {
	if u == nil {
		return nil
	}
	blocked := make(map[uint]bool, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = true
	}
	return &Viewer{ID: u.ID, Role: u.Role, BlockedIDs: blocked}
}

// FilterVisible returns the subset of comments the viewer may see.
//
// Hidden comments stay in the result: they are redacted at display time,
// not removed, so reply counts under a hidden parent remain accurate.
// Pending comments are visible only to their author, the context owner and
// moderators. Blocked pairs are mutually opaque; neither side gets a
// placeholder.
func FilterVisible(comments []models.Comment, viewer *Viewer, ownerID uint, blocks BlockOracle) ([]models.Comment, error) {
	out := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if viewer == nil {
			if c.Status == models.StatusPending {
				continue
			}
			out = append(out, c)
			continue
		}
		if viewer.BlockedIDs[c.UserID] {
			continue
		}
		if blocks != nil && c.UserID != viewer.ID {
			blocked, err := blocks.AreBlocked(viewer.ID, c.UserID)
			if err != nil {
				return nil, err
			}
			if blocked {
				continue
			}
		}
		if c.Status == models.StatusPending {
			if c.UserID != viewer.ID && viewer.ID != ownerID && !viewer.IsModerator() {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}
