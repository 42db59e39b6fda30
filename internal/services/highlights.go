package services

import (
	"pawgrove/internal/models"
)

// TogglePin sets or clears the context's pinned comment. Only the context
// owner may call it; setting the id that is already pinned clears the slot.
func TogglePin(ctx *models.DiscussionContext, actor *models.User, commentID uint) error {
	if actor == nil || actor.ID != ctx.OwnerID {
		return ErrUnauthorized
	}
	if ctx.PinnedCommentID != nil && *ctx.PinnedCommentID == commentID {
		ctx.PinnedCommentID = nil
		return nil
	}
	id := commentID
	ctx.PinnedCommentID = &id
	return nil
}

// ToggleBestAnswer works like TogglePin for the best-answer slot. The two
// slots are independent; one comment may hold both.
func ToggleBestAnswer(ctx *models.DiscussionContext, actor *models.User, commentID uint) error {
	if actor == nil || actor.ID != ctx.OwnerID {
		return ErrUnauthorized
	}
	if ctx.BestAnswerCommentID != nil && *ctx.BestAnswerCommentID == commentID {
		ctx.BestAnswerCommentID = nil
		return nil
	}
	id := commentID
	ctx.BestAnswerCommentID = &id
	return nil
}

// resolveHighlight looks a highlight id up in the visible forest. A
// dangling or filtered-out reference means the slot renders as unset; the
// node itself stays in its normal tree position either way.
func resolveHighlight(roots []*CommentNode, id *uint) *CommentNode {
	if id == nil {
		return nil
	}
	return FindNode(roots, *id)
}
