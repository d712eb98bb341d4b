package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"vetchat/config"
	"vetchat/handlers"
	"vetchat/utils"

	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/messages", hb.PostMessageHandler)
		api.GET("/history/:sessionId", hb.GetHistoryHandler)
	}
}

// RegisterAppointmentRoutes registers the direct appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("/:sessionId", hb.ListAppointmentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "VetChat API",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"details":   utils.GetHealthStatus(),
		})
	})
}

// RegisterWidgetRoutes serves the embeddable chat widget bundle.
func RegisterWidgetRoutes(r *gin.Engine) {
	distDir := config.AppConfig.WidgetDistDir
	r.Static("/sdk", distDir)
	r.GET("/chatbot.js", func(c *gin.Context) {
		bundle := filepath.Join(distDir, "chatbot.umd.js")
		if _, err := os.Stat(bundle); err != nil {
			c.Data(http.StatusNotFound, "application/javascript",
				[]byte("// Widget not built yet. Run: cd frontend && npm run build\n"))
			return
		}
		c.Header("Content-Type", "application/javascript")
		c.File(bundle)
	})
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterChatRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterWidgetRoutes(r)
}
