package handlers

import (
	"net/http"

	"pawgrove/internal/services"

	"github.com/gin-gonic/gin"
)

// reactionKinds is the closed set accepted at the edge; the ledger itself
// treats kinds as opaque strings.
var reactionKinds = map[string]bool{
	"paw":   true,
	"heart": true,
	"laugh": true,
	"wow":   true,
	"sad":   true,
}

type ReactionHandler struct {
	engine *services.Engine
}

func NewReactionHandler() *ReactionHandler {
	return &ReactionHandler{engine: newEngine()}
}

// Toggle flips the caller's reaction on a comment: same kind removes it, a
// different kind switches, no prior reaction adds one.
func (h *ReactionHandler) Toggle(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	kind := c.PostForm("kind")
	if !reactionKinds[kind] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown reaction kind"})
		return
	}

	comment, err := h.engine.React(cid, user, kind)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	invalidateThread(comment.ContextType, comment.ContextID)

	userReaction, _ := comment.Reactions.KindOf(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"reactions":       comment.Reactions,
		"total_reactions": comment.Reactions.Total(),
		"user_reaction":   userReaction,
	})
}
