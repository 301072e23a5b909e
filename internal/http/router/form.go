package router

import (
	"github.com/Primesh-FL/FormSG/internal/http/handler"
	"github.com/gin-gonic/gin"
)

// FormRouter sets up form routes
// - admin routes require a session
// - public routes serve respondents
func FormRouter(admin *gin.RouterGroup, public *gin.RouterGroup, h *handler.FormHandler) {
	admin.GET("", h.ListForms)
	admin.POST("", h.CreateForm)
	admin.GET("/schema", h.Schema)
	admin.GET("/:form_id", h.GetAdminForm)
	admin.PUT("/:form_id", h.UpdateForm)

	public.GET("/:form_id", h.GetPublicForm)
	public.POST("/:form_id/submissions", h.Submit)
}
