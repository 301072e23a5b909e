package service

import (
	"errors"
	"fmt"

	"github.com/Primesh-FL/FormSG/internal/model"
)

var (
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")
)

const (
	msgDatabase          = "Error occurred while accessing the database"
	msgWorkspaceConflict = "A workspace with this title already exists"
	msgWorkspaceNotFound = "Workspace not found"
	msgForbiddenWs       = "You do not have permission to access this workspace"
	msgFormNotFound      = "Form not found"
	msgForbiddenForm     = "You do not have permission to access this form"
	msgFormPrivate       = "Form is not public"
)

// appError carries a message that is safe to show to clients and the
// underlying cause for logs.
type appError struct {
	Message string
	Err     error
}

func (e *appError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *appError) Unwrap() error {
	return e.Err
}

func newAppError(message, fallback string, cause error) appError {
	if message == "" {
		message = fallback
	}
	return appError{Message: message, Err: cause}
}

type DatabaseError struct{ appError }

func NewDatabaseError(message string, cause error) *DatabaseError {
	return &DatabaseError{newAppError(message, msgDatabase, cause)}
}

type DatabaseConflictError struct{ appError }

func NewDatabaseConflictError(message string, cause error) *DatabaseConflictError {
	return &DatabaseConflictError{newAppError(message, msgWorkspaceConflict, cause)}
}

type WorkspaceNotFoundError struct{ appError }

func NewWorkspaceNotFoundError(message string) *WorkspaceNotFoundError {
	return &WorkspaceNotFoundError{newAppError(message, msgWorkspaceNotFound, nil)}
}

type ForbiddenWorkspaceError struct{ appError }

func NewForbiddenWorkspaceError(message string) *ForbiddenWorkspaceError {
	return &ForbiddenWorkspaceError{newAppError(message, msgForbiddenWs, nil)}
}

type FormNotFoundError struct{ appError }

func NewFormNotFoundError(message string) *FormNotFoundError {
	return &FormNotFoundError{newAppError(message, msgFormNotFound, nil)}
}

type ForbiddenFormError struct{ appError }

func NewForbiddenFormError(message string) *ForbiddenFormError {
	return &ForbiddenFormError{newAppError(message, msgForbiddenForm, nil)}
}

type FormPrivateError struct{ appError }

func NewFormPrivateError(message string) *FormPrivateError {
	return &FormPrivateError{newAppError(message, msgFormPrivate, nil)}
}

type InvalidFormStatusError struct{ appError }

func NewInvalidFormStatusError(status model.FormStatus) *InvalidFormStatusError {
	return &InvalidFormStatusError{appError{Message: fmt.Sprintf("Invalid form status %q", status)}}
}

type InvalidFormLogicError struct{ appError }

func NewInvalidFormLogicError(cause error) *InvalidFormLogicError {
	msg := "Invalid form logic"
	if cause != nil {
		msg = cause.Error()
	}
	return &InvalidFormLogicError{appError{Message: msg, Err: cause}}
}

// SubmissionPreventedError reports the logic unit that blocked a submission.
// Message is the unit's prevent-submit message.
type SubmissionPreventedError struct {
	appError
	LogicID string
}

func NewSubmissionPreventedError(logicID, message string) *SubmissionPreventedError {
	return &SubmissionPreventedError{
		appError: newAppError(message, "Submission is disabled for this form", nil),
		LogicID:  logicID,
	}
}

// InvalidSubmissionError covers missing required answers and answers to
// unknown fields.
type InvalidSubmissionError struct{ appError }

func NewInvalidSubmissionError(message string) *InvalidSubmissionError {
	return &InvalidSubmissionError{newAppError(message, "Invalid submission", nil)}
}
