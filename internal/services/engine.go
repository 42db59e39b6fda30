package services

import (
	"time"

	"pawgrove/internal/models"
)

// Engine ties the comment pipeline together: every read runs
// filter → build → decorate over the store's flat list, every mutation is a
// permission check followed by a store read-modify-write. The engine keeps
// no state of its own; the next Thread call rebuilds the view from scratch.
type Engine struct {
	store        CommentStore
	contexts     ContextStore
	blocks       BlockOracle
	restrictions RestrictionOracle
	notes        NotificationStore // optional
}

func NewEngine(store CommentStore, contexts ContextStore, blocks BlockOracle, restrictions RestrictionOracle, notes NotificationStore) *Engine {
	return &Engine{
		store:        store,
		contexts:     contexts,
		blocks:       blocks,
		restrictions: restrictions,
		notes:        notes,
	}
}

// ThreadView is what the rendering layer receives: the two fixed highlight
// slots plus the normal forest. Highlighted nodes also keep their normal
// position in Roots.
type ThreadView struct {
	Pinned     *CommentNode   `json:"pinned,omitempty"`
	BestAnswer *CommentNode   `json:"best_answer,omitempty"`
	Roots      []*CommentNode `json:"comments"`
	Total      int            `json:"total"`
}

// Thread produces the full view of a discussion for the given viewer.
func (e *Engine) Thread(ctxType models.ContextType, ctxID uint, viewer *Viewer, mode SortMode) (*ThreadView, error) {
	dctx, err := e.contexts.GetContext(ctxType, ctxID)
	if err != nil {
		return nil, err
	}
	comments, err := e.store.ListByContext(ctxType, ctxID)
	if err != nil {
		return nil, err
	}
	visible, err := FilterVisible(comments, viewer, dctx.OwnerID, e.blocks)
	if err != nil {
		return nil, err
	}
	roots := BuildTree(visible, mode)
	decorate(roots, viewer, dctx)

	view := &ThreadView{
		Pinned:     resolveHighlight(roots, dctx.PinnedCommentID),
		BestAnswer: resolveHighlight(roots, dctx.BestAnswerCommentID),
		Roots:      roots,
		Total:      len(visible),
	}
	return view, nil
}

// decorate fills the per-node derived flags for the requesting viewer.
func decorate(roots []*CommentNode, viewer *Viewer, dctx *models.DiscussionContext) {
	Walk(roots, func(n *CommentNode) {
		n.IsHidden = n.Status == models.StatusHidden
		n.IsPending = n.Status == models.StatusPending
		n.TotalReactions = n.Reactions.Total()
		if viewer != nil {
			if kind, ok := n.Reactions.KindOf(viewer.ID); ok {
				n.UserReaction = kind
			}
		}
		n.IsPinned = dctx.PinnedCommentID != nil && *dctx.PinnedCommentID == n.ID
		n.IsBestAnswer = dctx.BestAnswerCommentID != nil && *dctx.BestAnswerCommentID == n.ID
	})
}

// Create posts a new comment. Replies must point at a comment in the same
// context. Authors on the owner's restricted list start out pending.
func (e *Engine) Create(ctxType models.ContextType, ctxID uint, author *models.User, content, imageURL, cid string, parentCid string) (*models.Comment, error) {
	if author == nil {
		return nil, ErrUnauthorized
	}
	dctx, err := e.contexts.GetContext(ctxType, ctxID)
	if err != nil {
		return nil, err
	}

	var parent *models.Comment
	if parentCid != "" {
		parent, err = e.store.GetByCid(parentCid)
		if err != nil {
			return nil, err
		}
		if parent.ContextType != ctxType || parent.ContextID != ctxID {
			return nil, ErrInvalidParent
		}
	}

	status := models.StatusPublished
	if e.restrictions != nil {
		restricted, err := e.restrictions.IsRestricted(dctx.OwnerID, author.ID)
		if err != nil {
			return nil, err
		}
		if restricted {
			status = models.StatusPending
		}
	}

	comment := &models.Comment{
		Cid:         cid,
		ContextType: ctxType,
		ContextID:   ctxID,
		UserID:      author.ID,
		Content:     content,
		ImageURL:    imageURL,
		Status:      status,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}
	if err := e.store.Create(comment); err != nil {
		return nil, err
	}
	e.notifyReply(parent, comment)
	return comment, nil
}

// Edit replaces the content. Moderation status is untouched: an edited
// pending comment stays pending, an edited published one does not return
// to review.
func (e *Engine) Edit(cid string, actor *models.User, content string) (*models.Comment, error) {
	comment, err := e.store.GetByCid(cid)
	if err != nil {
		return nil, err
	}
	if !CanEdit(comment, actor) {
		return nil, ErrUnauthorized
	}
	now := time.Now()
	comment.Content = content
	comment.EditedAt = &now
	if err := e.store.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment and its entire reply subtree in one logical
// operation. The subtree is computed over the raw context list, not the
// filtered one, so hidden and pending descendants are removed too.
// Highlight slots pointing into the subtree are cleared.
func (e *Engine) Delete(cid string, actor *models.User) error {
	comment, err := e.store.GetByCid(cid)
	if err != nil {
		return err
	}
	dctx, err := e.contexts.GetContext(comment.ContextType, comment.ContextID)
	if err != nil {
		return err
	}
	if !CanDelete(comment, actor, dctx.OwnerID) {
		return ErrUnauthorized
	}

	all, err := e.store.ListByContext(comment.ContextType, comment.ContextID)
	if err != nil {
		return err
	}
	ids := SubtreeIDs(all, comment.ID)
	if err := e.store.Delete(ids); err != nil {
		return err
	}

	changed := false
	for _, id := range ids {
		if dctx.PinnedCommentID != nil && *dctx.PinnedCommentID == id {
			dctx.PinnedCommentID = nil
			changed = true
		}
		if dctx.BestAnswerCommentID != nil && *dctx.BestAnswerCommentID == id {
			dctx.BestAnswerCommentID = nil
			changed = true
		}
	}
	if changed {
		return e.contexts.SaveContext(dctx)
	}
	return nil
}

// React toggles the actor's reaction on a comment.
func (e *Engine) React(cid string, actor *models.User, kind string) (*models.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	comment, err := e.store.GetByCid(cid)
	if err != nil {
		return nil, err
	}
	ToggleReaction(comment, actor.ID, kind)
	if err := e.store.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Flag records the actor's report against a comment.
func (e *Engine) Flag(cid string, actor *models.User, reason, message string) (*models.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	comment, err := e.store.GetByCid(cid)
	if err != nil {
		return nil, err
	}
	ApplyFlag(comment, actor.ID, reason, message)
	if err := e.store.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Moderate applies a moderation status change.
func (e *Engine) Moderate(cid string, actor *models.User, to models.CommentStatus, note string, clearFlags bool) (*models.Comment, error) {
	comment, err := e.store.GetByCid(cid)
	if err != nil {
		return nil, err
	}
	dctx, err := e.contexts.GetContext(comment.ContextType, comment.ContextID)
	if err != nil {
		return nil, err
	}
	if err := Moderate(comment, actor, dctx.OwnerID, to, note, clearFlags); err != nil {
		return nil, err
	}
	if err := e.store.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// QuickApprove publishes a pending comment without an audit record.
func (e *Engine) QuickApprove(cid string, actor *models.User) (*models.Comment, error) {
	comment, err := e.store.GetByCid(cid)
	if err != nil {
		return nil, err
	}
	dctx, err := e.contexts.GetContext(comment.ContextType, comment.ContextID)
	if err != nil {
		return nil, err
	}
	if err := QuickApprove(comment, actor, dctx.OwnerID); err != nil {
		return nil, err
	}
	if err := e.store.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// TogglePin pins or unpins a comment in its context.
func (e *Engine) TogglePin(ctxType models.ContextType, ctxID uint, actor *models.User, cid string) (*models.DiscussionContext, error) {
	return e.toggleHighlight(ctxType, ctxID, actor, cid, TogglePin)
}

// ToggleBestAnswer marks or unmarks a comment as the best answer.
func (e *Engine) ToggleBestAnswer(ctxType models.ContextType, ctxID uint, actor *models.User, cid string) (*models.DiscussionContext, error) {
	return e.toggleHighlight(ctxType, ctxID, actor, cid, ToggleBestAnswer)
}

func (e *Engine) toggleHighlight(ctxType models.ContextType, ctxID uint, actor *models.User, cid string, toggle func(*models.DiscussionContext, *models.User, uint) error) (*models.DiscussionContext, error) {
	comment, err := e.store.GetByCid(cid)
	if err != nil {
		return nil, err
	}
	if comment.ContextType != ctxType || comment.ContextID != ctxID {
		return nil, ErrNotFound
	}
	dctx, err := e.contexts.GetContext(ctxType, ctxID)
	if err != nil {
		return nil, err
	}
	if err := toggle(dctx, actor, comment.ID); err != nil {
		return nil, err
	}
	if err := e.contexts.SaveContext(dctx); err != nil {
		return nil, err
	}
	return dctx, nil
}
