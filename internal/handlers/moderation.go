package handlers

import (
	"net/http"

	"pawgrove/internal/models"
	"pawgrove/internal/services"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	engine *services.Engine
}

func NewModerationHandler() *ModerationHandler {
	return &ModerationHandler{engine: newEngine()}
}

// Moderate applies a status transition with an audit record. Form params:
// status (published|hidden), note, clear_flags.
func (h *ModerationHandler) Moderate(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	status := models.CommentStatus(c.PostForm("status"))
	if status != models.StatusPublished && status != models.StatusHidden {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be published or hidden"})
		return
	}
	note := c.PostForm("note")
	clearFlags := c.PostForm("clear_flags") == "true"

	comment, err := h.engine.Moderate(cid, user, status, note, clearFlags)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(comment.ContextType, comment.ContextID)
	c.JSON(http.StatusOK, comment)
}

// QuickApprove is the pending → published shortcut.
func (h *ModerationHandler) QuickApprove(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	comment, err := h.engine.QuickApprove(cid, user)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(comment.ContextType, comment.ContextID)
	c.JSON(http.StatusOK, comment)
}
