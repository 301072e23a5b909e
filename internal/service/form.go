package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Primesh-FL/FormSG/common/id"
	"github.com/Primesh-FL/FormSG/internal/logic"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/store"
)

type CreateFormParams struct {
	Title  string
	Fields []logic.Field
	Logics []logic.Logic
}

// UpdateFormParams applies only the non-nil fields.
type UpdateFormParams struct {
	Title  *string
	Status *model.FormStatus
	Fields []logic.Field
	Logics []logic.Logic
}

type FormService interface {
	CreateForm(ctx context.Context, userID int64, params CreateFormParams) (*model.Form, error)
	ListForms(ctx context.Context, userID int64) ([]model.Form, error)
	GetAdminForm(ctx context.Context, userID, formID int64) (*model.Form, error)
	UpdateForm(ctx context.Context, userID, formID int64, params UpdateFormParams) (*model.Form, error)
	GetPublicForm(ctx context.Context, formID int64) (*model.Form, error)
	Submit(ctx context.Context, formID int64, inputs logic.Inputs) (*model.Submission, error)
}

type formService struct {
	formStore       store.FormStore
	submissionStore store.SubmissionStore
}

func NewFormService(formStore store.FormStore, submissionStore store.SubmissionStore) FormService {
	return &formService{
		formStore:       formStore,
		submissionStore: submissionStore,
	}
}

func (s *formService) CreateForm(ctx context.Context, userID int64, params CreateFormParams) (*model.Form, error) {
	if err := logic.Validate(params.Fields, params.Logics); err != nil {
		return nil, NewInvalidFormLogicError(err)
	}

	form := &model.Form{
		ID:          id.New(),
		Title:       params.Title,
		AdminUserID: userID,
		Status:      model.FormStatusPrivate,
		Fields:      params.Fields,
		Logics:      params.Logics,
	}

	if err := s.formStore.Create(ctx, form); err != nil {
		slog.ErrorContext(ctx, "failed to create form", "error", err, "user_id", userID)
		return nil, NewDatabaseError("", fmt.Errorf("creating form: %w", err))
	}

	slog.InfoContext(ctx, "form created", "form_id", form.ID, "user_id", userID)
	return form, nil
}

func (s *formService) ListForms(ctx context.Context, userID int64) ([]model.Form, error) {
	forms, err := s.formStore.ListByAdmin(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list forms", "error", err, "user_id", userID)
		return nil, NewDatabaseError("", fmt.Errorf("listing forms: %w", err))
	}
	if forms == nil {
		forms = []model.Form{}
	}
	return forms, nil
}

func (s *formService) GetAdminForm(ctx context.Context, userID, formID int64) (*model.Form, error) {
	form, err := s.getForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if !form.IsAdmin(userID) {
		return nil, NewForbiddenFormError("")
	}
	return form, nil
}

func (s *formService) UpdateForm(ctx context.Context, userID, formID int64, params UpdateFormParams) (*model.Form, error) {
	if params.Status != nil && !params.Status.IsValid() {
		return nil, NewInvalidFormStatusError(*params.Status)
	}

	form, err := s.GetAdminForm(ctx, userID, formID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		form.Title = *params.Title
	}
	if params.Status != nil {
		form.Status = *params.Status
	}
	if params.Fields != nil {
		form.Fields = params.Fields
	}
	if params.Logics != nil {
		form.Logics = params.Logics
	}

	if err := logic.Validate(form.Fields, form.Logics); err != nil {
		return nil, NewInvalidFormLogicError(err)
	}

	if err := s.formStore.Update(ctx, form); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewFormNotFoundError("")
		}
		slog.ErrorContext(ctx, "failed to update form", "error", err, "form_id", formID)
		return nil, NewDatabaseError("", fmt.Errorf("updating form: %w", err))
	}

	return form, nil
}

func (s *formService) GetPublicForm(ctx context.Context, formID int64) (*model.Form, error) {
	form, err := s.getForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.Status != model.FormStatusPublic {
		return nil, NewFormPrivateError("")
	}
	return form, nil
}

// Submit stores a response unless a preventSubmit logic unit is fulfilled.
// Answers to hidden or unknown fields are dropped.
func (s *formService) Submit(ctx context.Context, formID int64, inputs logic.Inputs) (*model.Submission, error) {
	form, err := s.GetPublicForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	if unit := logic.LogicUnitPreventingSubmit(form.Fields, form.Logics, inputs); unit != nil {
		slog.InfoContext(ctx, "submission prevented by form logic", "form_id", formID, "logic_id", unit.ID)
		return nil, NewSubmissionPreventedError(unit.ID, unit.PreventSubmitMessage)
	}

	visible := logic.VisibleFieldIDs(form.Fields, form.Logics, inputs)
	responses := make(logic.Inputs, len(visible))
	var missing []string
	for _, f := range form.Fields {
		if _, ok := visible[f.ID]; !ok || !f.Type.IsInput() {
			continue
		}
		answer, answered := inputs[f.ID]
		if !answered || answer.IsEmpty() {
			if f.Required {
				missing = append(missing, f.ID)
			}
			continue
		}
		responses[f.ID] = answer
	}
	if len(missing) > 0 {
		return nil, NewInvalidSubmissionError("Missing answers for required fields: " + strings.Join(missing, ", "))
	}

	sub := &model.Submission{
		ID:        id.New(),
		FormID:    form.ID,
		Responses: responses,
	}
	if err := s.submissionStore.Create(ctx, sub); err != nil {
		slog.ErrorContext(ctx, "failed to store submission", "error", err, "form_id", formID)
		return nil, NewDatabaseError("", fmt.Errorf("creating submission: %w", err))
	}

	slog.InfoContext(ctx, "submission received", "form_id", formID, "submission_id", sub.ID)
	return sub, nil
}

func (s *formService) getForm(ctx context.Context, formID int64) (*model.Form, error) {
	form, err := s.formStore.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewFormNotFoundError("")
		}
		slog.ErrorContext(ctx, "failed to get form", "error", err, "form_id", formID)
		return nil, NewDatabaseError("", fmt.Errorf("getting form: %w", err))
	}
	return form, nil
}
