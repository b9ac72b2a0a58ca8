// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dreamtrip/internal/http/handlers"
	"dreamtrip/internal/http/middleware"
	"dreamtrip/internal/modules/chat"
	"dreamtrip/internal/modules/trip"
)

// RouterDeps carries everything the router needs. ChatHistory may be nil when
// no conversation store is configured.
type RouterDeps struct {
	Trips       *trip.Service
	Chat        *chat.Service
	ChatHistory *chat.Store
	RateLimiter *middleware.RateLimiter
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), middleware.Auth())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "AI DreamTrip API",
			"status":  "running",
			"version": "1.0.0",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	tripHandler := handlers.NewTripHandler(deps.Trips)
	chatHandler := handlers.NewChatHandler(deps.Chat, deps.ChatHistory)

	api := r.Group("/api")
	if deps.RateLimiter != nil {
		api.POST("/chat", deps.RateLimiter.Limit(), chatHandler.Send)
		api.POST("/plan-trip", deps.RateLimiter.Limit(), tripHandler.Plan)
	} else {
		api.POST("/chat", chatHandler.Send)
		api.POST("/plan-trip", tripHandler.Plan)
	}
	api.GET("/trips/:id", tripHandler.Get)
	api.GET("/trips/:id/chat", chatHandler.History)

	return r
}
