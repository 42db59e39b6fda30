package handlers

import (
	"net/http"
	"strings"
	"time"

	"pawgrove/internal/db"
	"pawgrove/internal/services"
	"pawgrove/internal/store"
	"pawgrove/internal/utils"

	"github.com/gin-gonic/gin"
)

const hiddenPlaceholder = "This comment was hidden by a moderator."

type CommentHandler struct {
	engine *services.Engine
	blocks *store.Blocks
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		engine: newEngine(),
		blocks: store.NewBlocks(db.DB),
	}
}

// viewer resolves the requesting user into a visibility viewer, loading
// their block list. Anonymous requests get nil.
func (h *CommentHandler) viewer(c *gin.Context) (*services.Viewer, error) {
	user := CurrentUser(c)
	if user == nil {
		return nil, nil
	}
	blockedIDs, err := h.blocks.BlockedIDs(user.ID)
	if err != nil {
		return nil, err
	}
	return services.ViewerFor(user, blockedIDs), nil
}

// Thread returns the full discussion view for a context.
func (h *CommentHandler) Thread(c *gin.Context) {
	ctxType, ctxID, ok := contextRef(c)
	if !ok {
		return
	}
	mode := services.ParseSortMode(c.Query("sort"))

	viewer, err := h.viewer(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// Anonymous views are identical for everyone; cache them briefly.
	cacheKey := threadCacheKey(ctxType, ctxID, mode)
	if viewer == nil {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	view, err := h.engine.Thread(ctxType, ctxID, viewer, mode)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	renderContent(view, viewer)

	if viewer == nil {
		utils.GetCache().Set(cacheKey, view, 1*time.Minute)
	}
	c.JSON(http.StatusOK, view)
}

// renderContent fills ContentHTML on every node. Hidden comments stay in
// the tree but are redacted for everyone except moderators; their reply
// counts remain accurate.
func renderContent(view *services.ThreadView, viewer *services.Viewer) {
	services.Walk(view.Roots, func(n *services.CommentNode) {
		if n.IsHidden && !viewer.IsModerator() {
			n.Content = ""
			n.ImageURL = ""
			n.ContentHTML = hiddenPlaceholder
			return
		}
		n.ContentHTML = utils.RenderMarkdown(n.Content)
	})
}

// Create posts a comment or reply into a context.
func (h *CommentHandler) Create(c *gin.Context) {
	ctxType, ctxID, ok := contextRef(c)
	if !ok {
		return
	}
	user := CurrentUser(c)

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	parentCid := c.PostForm("parent_cid")
	imageURL := c.PostForm("image_url")

	comment, err := h.engine.Create(ctxType, ctxID, user, content, imageURL, utils.RandString(8), parentCid)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(ctxType, ctxID)
	c.JSON(http.StatusCreated, comment)
}

// Edit replaces a comment's content. Author only; status is untouched.
func (h *CommentHandler) Edit(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	comment, err := h.engine.Edit(cid, user, content)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(comment.ContextType, comment.ContextID)
	c.JSON(http.StatusOK, comment)
}

// Delete removes a comment and its whole reply subtree.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	// Resolve the context first so the cache can be invalidated after.
	target, err := store.NewComments(db.DB).GetByCid(cid)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := h.engine.Delete(cid, user); err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(target.ContextType, target.ContextID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RegisterContext claims a discussion surface for its owner. The host app
// calls this once when a post, wiki page or photo gains comments. The
// caller becomes the context owner; idempotent on repeat calls.
func (h *CommentHandler) RegisterContext(c *gin.Context) {
	ctxType, ctxID, ok := contextRef(c)
	if !ok {
		return
	}
	user := CurrentUser(c)

	dctx, err := store.NewContexts(db.DB).Register(ctxType, ctxID, user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dctx)
}
