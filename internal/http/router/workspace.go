package router

import (
	"github.com/Primesh-FL/FormSG/internal/http/handler"
	"github.com/gin-gonic/gin"
)

// WorkspaceRouter expects rg to already sit behind RequireAuth.
func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("", h.GetWorkspaces)
	rg.POST("", h.CreateWorkspace)
	rg.PUT("/:workspace_id/title", h.UpdateWorkspaceTitle)
	rg.DELETE("/:workspace_id", h.DeleteWorkspace)
	rg.POST("/:workspace_id/move", h.MoveForms)
}
