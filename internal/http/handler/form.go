package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/Primesh-FL/FormSG/common"
	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/internal/http/dto"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"
)

var formDefinitionSchema = sync.OnceValue(func() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&dto.FormDefinition{})
	schema.Title = "Form definition"
	return schema
})

type FormHandler struct {
	formService service.FormService
}

func NewFormHandler(formService service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// Schema serves the JSON Schema admins can validate form definitions against.
func (h *FormHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, formDefinitionSchema())
}

func (h *FormHandler) ListForms(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	forms, err := h.formService.ListForms(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFormResponses(forms))
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid form definition: "+err.Error())
		return
	}
	title, err := common.NormalizeTitle(req.Title)
	if err != nil {
		respondBadRequest(c, titleError(err))
		return
	}

	form, err := h.formService.CreateForm(c.Request.Context(), user.ID, service.CreateFormParams{
		Title:  title,
		Fields: req.Fields,
		Logics: req.Logics,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFormResponse(form))
}

func (h *FormHandler) GetAdminForm(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	formID, ok := parseIDParam(c, "form_id", "form")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{FormID: &formID})

	form, err := h.formService.GetAdminForm(ctx, user.ID, formID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFormResponse(form))
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}
	formID, ok := parseIDParam(c, "form_id", "form")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{FormID: &formID})

	var req dto.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid form definition: "+err.Error())
		return
	}

	params := service.UpdateFormParams{
		Fields: req.Fields,
		Logics: req.Logics,
	}
	if req.Title != nil {
		title, err := common.NormalizeTitle(*req.Title)
		if err != nil {
			respondBadRequest(c, titleError(err))
			return
		}
		params.Title = &title
	}
	if req.Status != nil {
		status := model.FormStatus(*req.Status)
		params.Status = &status
	}

	form, err := h.formService.UpdateForm(ctx, user.ID, formID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFormResponse(form))
}

func (h *FormHandler) GetPublicForm(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id", "form")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{FormID: &formID})

	form, err := h.formService.GetPublicForm(ctx, formID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicFormResponse(form))
}

func (h *FormHandler) Submit(c *gin.Context) {
	formID, ok := parseIDParam(c, "form_id", "form")
	if !ok {
		return
	}
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{FormID: &formID})

	var req dto.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "responses are required")
		return
	}

	sub, err := h.formService.Submit(ctx, formID, req.Responses)
	if err != nil {
		var prevented *service.SubmissionPreventedError
		if errors.As(err, &prevented) {
			c.JSON(http.StatusBadRequest, dto.SubmissionPreventedResponse{
				Message: prevented.Message,
				LogicID: prevented.LogicID,
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}
