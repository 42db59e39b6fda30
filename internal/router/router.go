package router

import (
	"pawgrove/internal/handlers"
	"pawgrove/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	commentHandler := handlers.NewCommentHandler()
	reactionHandler := handlers.NewReactionHandler()
	flagHandler := handlers.NewFlagHandler()
	moderationHandler := handlers.NewModerationHandler()
	highlightHandler := handlers.NewHighlightHandler()
	blockHandler := handlers.NewBlockHandler()
	notificationHandler := handlers.NewNotificationHandler()

	// Public routes
	r.GET("/comments/:type/:id", commentHandler.Thread) // full thread view, anonymous allowed

	r.POST("/signup", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/contexts/:type/:id", commentHandler.RegisterContext) // claim a discussion surface

		authorized.POST("/comments/:type/:id", commentHandler.Create)
		authorized.POST("/comment/:cid/edit", commentHandler.Edit)
		authorized.DELETE("/comment/:cid", commentHandler.Delete) // cascades to the whole subtree

		authorized.POST("/comment/:cid/react", reactionHandler.Toggle)
		authorized.POST("/comment/:cid/flag", flagHandler.Flag)

		authorized.POST("/comment/:cid/moderate", moderationHandler.Moderate)
		authorized.POST("/comment/:cid/approve", moderationHandler.QuickApprove)

		authorized.POST("/comments/:type/:id/pin", highlightHandler.TogglePin)
		authorized.POST("/comments/:type/:id/best-answer", highlightHandler.ToggleBestAnswer)

		authorized.POST("/block/:id", blockHandler.Block)
		authorized.DELETE("/block/:id", blockHandler.Unblock)
		authorized.POST("/restrict/:id", blockHandler.Restrict)
		authorized.DELETE("/restrict/:id", blockHandler.Unrestrict)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
	}
}
