package dto

import (
	"time"

	"github.com/Primesh-FL/FormSG/internal/logic"
	"github.com/Primesh-FL/FormSG/internal/model"
)

// FormDefinition is the JSON shape admins submit for a form's content. It is
// also the root of the published JSON Schema.
type FormDefinition struct {
	Title  string        `json:"title" jsonschema:"required,minLength=1,maxLength=200"`
	Fields []logic.Field `json:"fields,omitempty"`
	Logics []logic.Logic `json:"logics,omitempty"`
}

type CreateFormRequest struct {
	Title  string        `json:"title" binding:"required"`
	Fields []logic.Field `json:"fields"`
	Logics []logic.Logic `json:"logics"`
}

type UpdateFormRequest struct {
	Title  *string       `json:"title,omitempty"`
	Status *string       `json:"status,omitempty" binding:"omitempty,oneof=PRIVATE PUBLIC ARCHIVED"`
	Fields []logic.Field `json:"fields,omitempty"`
	Logics []logic.Logic `json:"logics,omitempty"`
}

type FormResponse struct {
	ID          int64         `json:"id,string"`
	Title       string        `json:"title"`
	AdminUserID int64         `json:"admin_user_id,string"`
	Status      string        `json:"status"`
	Fields      []logic.Field `json:"fields"`
	Logics      []logic.Logic `json:"logics"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func ToFormResponse(f *model.Form) *FormResponse {
	return &FormResponse{
		ID:          f.ID,
		Title:       f.Title,
		AdminUserID: f.AdminUserID,
		Status:      string(f.Status),
		Fields:      f.Fields,
		Logics:      f.Logics,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func ToFormResponses(forms []model.Form) []*FormResponse {
	result := make([]*FormResponse, len(forms))
	for i := range forms {
		result[i] = ToFormResponse(&forms[i])
	}
	return result
}

// PublicFormResponse omits ownership details.
type PublicFormResponse struct {
	ID     int64         `json:"id,string"`
	Title  string        `json:"title"`
	Fields []logic.Field `json:"fields"`
	Logics []logic.Logic `json:"logics"`
}

func ToPublicFormResponse(f *model.Form) *PublicFormResponse {
	return &PublicFormResponse{
		ID:     f.ID,
		Title:  f.Title,
		Fields: f.Fields,
		Logics: f.Logics,
	}
}

type SubmitFormRequest struct {
	Responses logic.Inputs `json:"responses" binding:"required"`
}

type SubmissionResponse struct {
	ID        int64     `json:"id,string"`
	FormID    int64     `json:"form_id,string"`
	CreatedAt time.Time `json:"created_at"`
}

func ToSubmissionResponse(s *model.Submission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:        s.ID,
		FormID:    s.FormID,
		CreatedAt: s.CreatedAt,
	}
}

// SubmissionPreventedResponse names the logic unit that blocked submission.
type SubmissionPreventedResponse struct {
	Message string `json:"message"`
	LogicID string `json:"logic_id,omitempty"`
}
