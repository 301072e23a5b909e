package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Primesh-FL/FormSG/common"
	"github.com/Primesh-FL/FormSG/common/id"
	"github.com/Primesh-FL/FormSG/internal/http/dto"
	"github.com/Primesh-FL/FormSG/internal/http/middleware"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/service"
	"github.com/gin-gonic/gin"
)

const msgUnexpected = "Something went wrong. Please try again."

// mapServiceError picks the status for a service failure. The message is the
// error's own client-facing message, echoed verbatim.
func mapServiceError(err error) (int, string) {
	var (
		dbErr          *service.DatabaseError
		conflictErr    *service.DatabaseConflictError
		forbiddenWsErr *service.ForbiddenWorkspaceError
		wsNotFoundErr  *service.WorkspaceNotFoundError
		formNotFound   *service.FormNotFoundError
		forbiddenForm  *service.ForbiddenFormError
		formPrivate    *service.FormPrivateError
		invalidStatus  *service.InvalidFormStatusError
		invalidLogic   *service.InvalidFormLogicError
		prevented      *service.SubmissionPreventedError
		invalidSub     *service.InvalidSubmissionError
	)

	switch {
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Message
	case errors.As(err, &dbErr):
		return http.StatusInternalServerError, dbErr.Message
	case errors.As(err, &forbiddenWsErr):
		return http.StatusForbidden, forbiddenWsErr.Message
	case errors.As(err, &wsNotFoundErr):
		return http.StatusNotFound, wsNotFoundErr.Message
	case errors.As(err, &formNotFound):
		return http.StatusNotFound, formNotFound.Message
	case errors.As(err, &forbiddenForm):
		return http.StatusForbidden, forbiddenForm.Message
	case errors.As(err, &formPrivate):
		return http.StatusNotFound, formPrivate.Message
	case errors.As(err, &invalidStatus):
		return http.StatusBadRequest, invalidStatus.Message
	case errors.As(err, &invalidLogic):
		return http.StatusBadRequest, invalidLogic.Message
	case errors.As(err, &prevented):
		return http.StatusBadRequest, prevented.Message
	case errors.As(err, &invalidSub):
		return http.StatusBadRequest, invalidSub.Message
	}
	return http.StatusInternalServerError, msgUnexpected
}

func respondServiceError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "status", status)
	}
	c.JSON(status, dto.MessageResponse{Message: message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: message})
}

func parseIDParam(c *gin.Context, name, label string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, "Invalid "+label+" id")
		return 0, false
	}
	return v, true
}

// sessionUser returns the authenticated admin, answering 401 when absent.
func sessionUser(c *gin.Context) (*model.User, bool) {
	user := middleware.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "User is not authorized"})
		return nil, false
	}
	return user, true
}

func titleError(err error) string {
	if errors.Is(err, common.ErrTitleTooLong) {
		return "Title must be at most 200 characters"
	}
	return "Title is required"
}
