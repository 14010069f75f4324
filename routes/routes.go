package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"labassist/handlers"
	"labassist/middleware"
)

// RegisterChatRoutes registers the assistant endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/chat")
	{
		api.Use(middleware.APITokenAuthMiddleware())
		api.POST("", hb.Chat.HandleChat)
	}
}

// RegisterEquipmentRoutes registers the direct booking endpoints.
func RegisterEquipmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/equipment")
	{
		api.Use(middleware.APITokenAuthMiddleware())
		api.POST("/book", hb.Booking.BookEquipment)
		api.GET("/available", hb.Booking.AvailableEquipment)
	}
}

// RegisterHealthRoutes registers the unauthenticated health endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.Health)
	r.GET("/health/deps", hb.Health.HealthDeps)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterEquipmentRoutes(r, hb)
}
