package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Primesh-FL/FormSG/common"
	"github.com/Primesh-FL/FormSG/common/id"
	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/internal/http/dto"
	"github.com/Primesh-FL/FormSG/internal/service"
	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) GetWorkspaces(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.GetWorkspaces(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(workspaces))
}

func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Title is required")
		return
	}
	title, err := common.NormalizeTitle(req.Title)
	if err != nil {
		respondBadRequest(c, titleError(err))
		return
	}

	ws, err := h.workspaceService.CreateWorkspace(c.Request.Context(), user.ID, title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) UpdateWorkspaceTitle(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	workspaceID, ok := parseIDParam(c, "workspace_id", "workspace")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{WorkspaceID: &workspaceID})

	var req dto.UpdateWorkspaceTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Title is required")
		return
	}
	title, err := common.NormalizeTitle(req.Title)
	if err != nil {
		respondBadRequest(c, titleError(err))
		return
	}

	ws, err := h.workspaceService.GetWorkspace(ctx, workspaceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := h.workspaceService.VerifyWorkspaceAdmin(ws, user.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.workspaceService.UpdateWorkspaceTitle(ctx, workspaceID, title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(updated))
}

func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	workspaceID, ok := parseIDParam(c, "workspace_id", "workspace")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{WorkspaceID: &workspaceID})

	// The body is optional. Chunked requests report ContentLength -1, so
	// only an empty stream (io.EOF) counts as no body.
	var req dto.DeleteWorkspaceRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, "Invalid request body")
			return
		}
	}

	if err := h.workspaceService.DeleteWorkspace(ctx, workspaceID, user.ID, req.ShouldDeleteForms); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully deleted workspace"})
}

func (h *WorkspaceHandler) MoveForms(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	workspaceID, ok := parseIDParam(c, "workspace_id", "workspace")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{WorkspaceID: &workspaceID})

	var req dto.MoveFormsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "form_ids and dest_workspace_id are required")
		return
	}
	destID, err := id.Parse(req.DestWorkspaceID)
	if err != nil {
		respondBadRequest(c, "Invalid destination workspace id")
		return
	}
	formIDs, err := id.ParseAll(req.FormIDs)
	if err != nil {
		respondBadRequest(c, "Invalid form id")
		return
	}

	ws, err := h.workspaceService.MoveForms(ctx, user.ID, workspaceID, destID, formIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}
