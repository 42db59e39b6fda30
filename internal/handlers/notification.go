package handlers

import (
	"net/http"

	"pawgrove/internal/db"
	"pawgrove/internal/store"
	"pawgrove/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *store.Notifications
}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{notifications: store.NewNotifications(db.DB)}
}

func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	notifications, err := h.notifications.ListForUser(user.ID, 50)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) Read(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	if err := h.notifications.MarkRead(user.ID, id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
