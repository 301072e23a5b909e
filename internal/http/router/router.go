package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Primesh-FL/FormSG/core/config"
	"github.com/Primesh-FL/FormSG/internal/http/handler"
	"github.com/Primesh-FL/FormSG/internal/http/handler/webhook"
	"github.com/Primesh-FL/FormSG/internal/http/middleware"
	"github.com/Primesh-FL/FormSG/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	// PublicURL is the externally visible origin, used to rebuild the
	// callback URL Twilio signed.
	PublicURL string
	Twilio    config.TwilioConfig
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(services.Auth(), cfg.IsProduction)

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	v1 := router.Group("/api/v1")
	{
		admin := v1.Group("/admin", requireAuth)

		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		WorkspaceRouter(admin.Group("/workspaces"), workspaceHandler)

		formHandler := handler.NewFormHandler(services.Forms())
		FormRouter(admin.Group("/forms"), v1.Group("/public/forms"), formHandler)

		twilioHandler := webhook.NewTwilioWebhookHandler(services.SmsDelivery(), cfg.Twilio, cfg.PublicURL)
		NotificationRouter(v1.Group("/notifications"), twilioHandler)
	}
}
