package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"pawgrove/internal/db"
	"pawgrove/internal/middleware"
	"pawgrove/internal/models"
	"pawgrove/internal/services"
	"pawgrove/internal/store"
	"pawgrove/internal/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(middleware.CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}

// AbortWithError maps engine errors onto HTTP status codes.
func AbortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidParent), errors.Is(err, services.ErrBadTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// contextRef parses the :type/:id route segments.
func contextRef(c *gin.Context) (models.ContextType, uint, bool) {
	ctxType := models.ContextType(c.Param("type"))
	ctxID := utils.StringToUint(c.Param("id"))
	if !models.ValidContextType(ctxType) || ctxID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown discussion context"})
		return "", 0, false
	}
	return ctxType, ctxID, true
}

// newEngine wires the engine to the GORM-backed stores. Handlers construct
// it once in their New* constructor, after db.Init has run.
func newEngine() *services.Engine {
	return services.NewEngine(
		store.NewComments(db.DB),
		store.NewContexts(db.DB),
		store.NewBlocks(db.DB),
		store.NewRestrictions(db.DB),
		store.NewNotifications(db.DB),
	)
}

func threadCacheKey(ctxType models.ContextType, ctxID uint, mode services.SortMode) string {
	return fmt.Sprintf("thread:%s:%d:%s", ctxType, ctxID, mode)
}

// invalidateThread drops the cached anonymous views of a context. Called
// after every mutation so the next read rebuilds from the store.
func invalidateThread(ctxType models.ContextType, ctxID uint) {
	cache := utils.GetCache()
	cache.Delete(threadCacheKey(ctxType, ctxID, services.SortTop))
	cache.Delete(threadCacheKey(ctxType, ctxID, services.SortNewest))
}
