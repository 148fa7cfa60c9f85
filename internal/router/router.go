package router

import (
	"net/http"

	"studyhive/internal/handlers"
	"studyhive/internal/middleware"
	"studyhive/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, hub *realtime.Hub) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	groupHandler := handlers.NewGroupHandler()
	postHandler := handlers.NewPostHandler(hub)
	fileHandler := handlers.NewFileHandler()
	flashcardHandler := handlers.NewFlashcardHandler()
	eventHandler := handlers.NewEventHandler()
	messageHandler := handlers.NewMessageHandler(hub)
	userHandler := handlers.NewUserHandler()
	aiHandler := handlers.NewAIHandler()
	realtimeHandler := handlers.NewRealtimeHandler(hub)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "StudyHive API is running")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws", realtimeHandler.Serve)

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/verify-otp", authHandler.VerifyOTP)
	api.POST("/auth/reset-password-final", authHandler.ResetPassword)
	api.POST("/ai/ask", aiHandler.Ask)

	// Protected routes
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)

		authorized.POST("/groups", groupHandler.Create)
		authorized.GET("/groups", groupHandler.List)
		authorized.GET("/groups/:id", groupHandler.Get)
		authorized.PUT("/groups/:id", groupHandler.Update)
		authorized.DELETE("/groups/:id", groupHandler.Delete)
		authorized.POST("/groups/:id/join", groupHandler.Join)

		// Group-scoped listings hang off the group resource; gin's
		// route tree cannot mix a param segment with a static sibling.
		authorized.GET("/groups/:id/posts", postHandler.ListByGroup)
		authorized.GET("/groups/:id/files", fileHandler.ListByGroup)
		authorized.GET("/groups/:id/flashcards", flashcardHandler.ListByGroup)
		authorized.GET("/groups/:id/events", eventHandler.ListByGroup)

		authorized.POST("/posts", postHandler.Create)
		authorized.POST("/posts/:id/comment", postHandler.AddComment)
		authorized.DELETE("/posts/:id/comment/:commentId", postHandler.DeleteComment)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/posts/:id/vote", postHandler.Vote)

		authorized.POST("/files/upload", fileHandler.Upload)

		authorized.POST("/flashcards/deck", flashcardHandler.CreateDeck)
		authorized.POST("/flashcards/card", flashcardHandler.AddCard)
		authorized.DELETE("/flashcards/deck/:deckId", flashcardHandler.DeleteDeck)

		authorized.POST("/events", eventHandler.Create)
		authorized.DELETE("/events/:id", eventHandler.Delete)

		authorized.POST("/messages", messageHandler.Send)
		authorized.GET("/messages/conversations/all", messageHandler.Conversations)
		authorized.GET("/messages/with/:userId", messageHandler.Conversation)

		authorized.PUT("/users/profile", userHandler.UpdateProfile)
		authorized.POST("/users/profile/upload", userHandler.UploadProfilePicture)
		authorized.GET("/users/reputation/log", userHandler.ReputationLog)
	}
}
