package dto

import (
	"time"

	"github.com/Primesh-FL/FormSG/common/id"
	"github.com/Primesh-FL/FormSG/internal/model"
)

type CreateWorkspaceRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateWorkspaceTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

type DeleteWorkspaceRequest struct {
	ShouldDeleteForms bool `json:"should_delete_forms"`
}

type MoveFormsRequest struct {
	FormIDs         []string `json:"form_ids" binding:"required,min=1,dive,required"`
	DestWorkspaceID string   `json:"dest_workspace_id" binding:"required"`
}

type WorkspaceResponse struct {
	ID          int64     `json:"id,string"`
	Title       string    `json:"title"`
	AdminUserID int64     `json:"admin_user_id,string"`
	FormIDs     []string  `json:"form_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:          ws.ID,
		Title:       ws.Title,
		AdminUserID: ws.AdminUserID,
		FormIDs:     id.FormatAll(ws.FormIDs),
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}

func ToWorkspaceResponses(workspaces []model.Workspace) []*WorkspaceResponse {
	result := make([]*WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		result[i] = ToWorkspaceResponse(&workspaces[i])
	}
	return result
}

type MessageResponse struct {
	Message string `json:"message"`
}
