package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polarxpression/batterybuddy-golang/internal/handlers"
	"github.com/polarxpression/batterybuddy-golang/internal/middleware"
)

// CORSMiddleware tells the browser the local web client may talk to us.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must run before everything else.
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/auth/anonymous", h.CreateAnonymousSession)

		// --- Battery Type Routes (read is public, falls back to defaults) ---
		v1.GET("/battery-types", h.GetBatteryTypes)

		// --- Protected Routes (Session Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			// --- Inventory Routes ---
			auth.GET("/inventory", h.GetItems)
			auth.POST("/inventory", h.CreateItem)
			auth.GET("/inventory/watch", h.WatchInventory)
			auth.GET("/inventory/:id", h.GetItem)
			auth.PUT("/inventory/:id", h.UpdateItem)
			auth.DELETE("/inventory/:id", h.DeleteItem)
			auth.PATCH("/inventory/:id/adjust", h.AdjustQuantity)

			// --- Battery Type Management ---
			auth.POST("/battery-types", h.CreateBatteryType)
			auth.DELETE("/battery-types/:slug", h.DeleteBatteryType)

			// --- Activity Feed ---
			auth.GET("/activity", h.GetRecentActivity)

			// --- Dashboard Stats ---
			auth.GET("/dashboard-stats", h.GetDashboardStats)

			// --- AI Chat Route ---
			auth.POST("/ai/chat", h.ChatAI)
		}
	}

	return router
}
