package handlers

import (
	"net/http"

	"pawgrove/internal/services"

	"github.com/gin-gonic/gin"
)

type HighlightHandler struct {
	engine *services.Engine
}

func NewHighlightHandler() *HighlightHandler {
	return &HighlightHandler{engine: newEngine()}
}

// TogglePin pins the comment named by the cid form param, or clears the
// slot when it is already pinned. Context owner only.
func (h *HighlightHandler) TogglePin(c *gin.Context) {
	ctxType, ctxID, ok := contextRef(c)
	if !ok {
		return
	}
	user := CurrentUser(c)

	cid := c.PostForm("cid")
	if cid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cid is required"})
		return
	}

	dctx, err := h.engine.TogglePin(ctxType, ctxID, user, cid)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(ctxType, ctxID)
	c.JSON(http.StatusOK, dctx)
}

// ToggleBestAnswer marks or unmarks the best answer the same way.
func (h *HighlightHandler) ToggleBestAnswer(c *gin.Context) {
	ctxType, ctxID, ok := contextRef(c)
	if !ok {
		return
	}
	user := CurrentUser(c)

	cid := c.PostForm("cid")
	if cid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cid is required"})
		return
	}

	dctx, err := h.engine.ToggleBestAnswer(ctxType, ctxID, user, cid)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(ctxType, ctxID)
	c.JSON(http.StatusOK, dctx)
}
