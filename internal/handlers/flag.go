package handlers

import (
	"net/http"

	"pawgrove/internal/services"

	"github.com/gin-gonic/gin"
)

// flagReasons is the closed set accepted at the edge; the ledger stores
// the reason as an opaque string.
var flagReasons = map[string]bool{
	"spam":       true,
	"harassment": true,
	"offtopic":   true,
	"other":      true,
}

type FlagHandler struct {
	engine *services.Engine
}

func NewFlagHandler() *FlagHandler {
	return &FlagHandler{engine: newEngine()}
}

// Flag records the caller's report. A second flag from the same user
// replaces the first.
func (h *FlagHandler) Flag(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	reason := c.PostForm("reason")
	if !flagReasons[reason] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown flag reason"})
		return
	}
	message := c.PostForm("message")

	comment, err := h.engine.Flag(cid, user, reason, message)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(comment.ContextType, comment.ContextID)
	c.JSON(http.StatusOK, gin.H{"flag_count": len(comment.Flags)})
}
