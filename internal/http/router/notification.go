package router

import (
	"github.com/Primesh-FL/FormSG/internal/http/handler/webhook"
	"github.com/gin-gonic/gin"
)

// NotificationRouter mounts vendor callbacks. They authenticate by signature,
// not by session.
func NotificationRouter(rg *gin.RouterGroup, twilio *webhook.TwilioWebhookHandler) {
	rg.POST("/twilio", twilio.HandleSmsUpdate)
}
