package handlers

import (
	"net/http"

	"pawgrove/internal/db"
	"pawgrove/internal/models"
	"pawgrove/internal/store"
	"pawgrove/internal/utils"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	blocks       *store.Blocks
	restrictions *store.Restrictions
}

func NewBlockHandler() *BlockHandler {
	return &BlockHandler{
		blocks:       store.NewBlocks(db.DB),
		restrictions: store.NewRestrictions(db.DB),
	}
}

// targetUser resolves the :id param to an existing user.
func targetUser(c *gin.Context) (uint, bool) {
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return 0, false
	}
	return id, true
}

// Block hides the target user and the caller from each other.
func (h *BlockHandler) Block(c *gin.Context) {
	user := CurrentUser(c)
	target, ok := targetUser(c)
	if !ok {
		return
	}
	if target == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot block yourself"})
		return
	}
	if err := h.blocks.Block(user.ID, target); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BlockHandler) Unblock(c *gin.Context) {
	user := CurrentUser(c)
	target, ok := targetUser(c)
	if !ok {
		return
	}
	if err := h.blocks.Unblock(user.ID, target); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Restrict soft-blocks the target for the caller's contexts: their new
// comments there start out pending.
func (h *BlockHandler) Restrict(c *gin.Context) {
	user := CurrentUser(c)
	target, ok := targetUser(c)
	if !ok {
		return
	}
	if target == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot restrict yourself"})
		return
	}
	if err := h.restrictions.Restrict(user.ID, target); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BlockHandler) Unrestrict(c *gin.Context) {
	user := CurrentUser(c)
	target, ok := targetUser(c)
	if !ok {
		return
	}
	if err := h.restrictions.Unrestrict(user.ID, target); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
