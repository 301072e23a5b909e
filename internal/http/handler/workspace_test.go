package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Primesh-FL/FormSG/internal/http/handler"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/service"
)

var _ = Describe("WorkspaceHandler", func() {
	const (
		userID      int64 = 1001
		workspaceID int64 = 2002
	)

	var (
		router   *gin.Engine
		svc      *mockWorkspaceService
		user     *model.User
		existing *model.Workspace
	)

	BeforeEach(func() {
		svc = &mockWorkspaceService{}
		user = &model.User{ID: userID, Email: "admin@example.gov"}
		existing = &model.Workspace{
			ID:          workspaceID,
			Title:       "Workspace",
			AdminUserID: userID,
			FormIDs:     []int64{},
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
	})

	JustBeforeEach(func() {
		router = gin.New()
		router.Use(withSessionUser(user))
		h := handler.NewWorkspaceHandler(svc)
		router.GET("/workspaces", h.GetWorkspaces)
		router.POST("/workspaces", h.CreateWorkspace)
		router.PUT("/workspaces/:workspace_id/title", h.UpdateWorkspaceTitle)
		router.DELETE("/workspaces/:workspace_id", h.DeleteWorkspace)
		router.POST("/workspaces/:workspace_id/move", h.MoveForms)
	})

	Describe("GetWorkspaces", func() {
		It("returns 200 with the admin's workspaces", func() {
			svc.getWorkspacesFn = func(_ context.Context, id int64) ([]model.Workspace, error) {
				Expect(id).To(Equal(userID))
				return []model.Workspace{*existing}, nil
			}

			w := doJSON(router, http.MethodGet, "/workspaces", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveLen(1))
			Expect(resp[0]["id"]).To(Equal("2002"))
			Expect(resp[0]["title"]).To(Equal("Workspace"))
		})

		It("returns 500 with the database error message", func() {
			svc.getWorkspacesFn = func(context.Context, int64) ([]model.Workspace, error) {
				return nil, service.NewDatabaseError("some error", errors.New("conn reset"))
			}

			w := doJSON(router, http.MethodGet, "/workspaces", "")

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decodeMessage(w)).To(Equal("some error"))
		})

		It("returns 409 with the conflict message", func() {
			svc.getWorkspacesFn = func(context.Context, int64) ([]model.Workspace, error) {
				return nil, service.NewDatabaseConflictError("some conflict", nil)
			}

			w := doJSON(router, http.MethodGet, "/workspaces", "")

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(MatchJSON(`{"message":"some conflict"}`))
		})

		Context("without a session user", func() {
			BeforeEach(func() { user = nil })

			It("returns 401", func() {
				w := doJSON(router, http.MethodGet, "/workspaces", "")
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("CreateWorkspace", func() {
		It("returns 200 with the created workspace", func() {
			svc.createWorkspaceFn = func(_ context.Context, id int64, title string) (*model.Workspace, error) {
				Expect(id).To(Equal(userID))
				Expect(title).To(Equal("My workspace"))
				return existing, nil
			}

			w := doJSON(router, http.MethodPost, "/workspaces", `{"title":"  My workspace  "}`)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 409 on a conflicting title", func() {
			svc.createWorkspaceFn = func(context.Context, int64, string) (*model.Workspace, error) {
				return nil, service.NewDatabaseConflictError("", errors.New("23505"))
			}

			w := doJSON(router, http.MethodPost, "/workspaces", `{"title":"dup"}`)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decodeMessage(w)).To(Equal("A workspace with this title already exists"))
		})

		It("returns 500 on a database error", func() {
			svc.createWorkspaceFn = func(context.Context, int64, string) (*model.Workspace, error) {
				return nil, service.NewDatabaseError("", errors.New("boom"))
			}

			w := doJSON(router, http.MethodPost, "/workspaces", `{"title":"ws"}`)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decodeMessage(w)).To(Equal("Error occurred while accessing the database"))
		})

		It("returns 400 on a blank title without calling the service", func() {
			svc.createWorkspaceFn = func(context.Context, int64, string) (*model.Workspace, error) {
				Fail("service should not be called")
				return nil, nil
			}

			w := doJSON(router, http.MethodPost, "/workspaces", `{"title":"   "}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 on an overlong title", func() {
			body := `{"title":"` + strings.Repeat("a", 201) + `"}`

			w := doJSON(router, http.MethodPost, "/workspaces", body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeMessage(w)).To(Equal("Title must be at most 200 characters"))
		})
	})

	Describe("UpdateWorkspaceTitle", func() {
		path := "/workspaces/2002/title"

		BeforeEach(func() {
			svc.getWorkspaceFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				Expect(id).To(Equal(workspaceID))
				return existing, nil
			}
		})

		It("returns 200 with the updated workspace", func() {
			svc.updateWorkspaceTitleFn = func(_ context.Context, id int64, title string) (*model.Workspace, error) {
				updated := *existing
				updated.Title = title
				return &updated, nil
			}

			w := doJSON(router, http.MethodPut, path, `{"title":"Renamed"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["title"]).To(Equal("Renamed"))
		})

		It("returns 409 when the new title conflicts", func() {
			svc.updateWorkspaceTitleFn = func(context.Context, int64, string) (*model.Workspace, error) {
				return nil, service.NewDatabaseConflictError("some conflict", nil)
			}

			w := doJSON(router, http.MethodPut, path, `{"title":"Renamed"}`)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decodeMessage(w)).To(Equal("some conflict"))
		})

		It("returns 500 when the update fails", func() {
			svc.updateWorkspaceTitleFn = func(context.Context, int64, string) (*model.Workspace, error) {
				return nil, service.NewDatabaseError("some error", nil)
			}

			w := doJSON(router, http.MethodPut, path, `{"title":"Renamed"}`)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decodeMessage(w)).To(Equal("some error"))
		})

		It("returns 404 when the workspace does not exist", func() {
			svc.getWorkspaceFn = func(context.Context, int64) (*model.Workspace, error) {
				return nil, service.NewWorkspaceNotFoundError("")
			}

			w := doJSON(router, http.MethodPut, path, `{"title":"Renamed"}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeMessage(w)).To(Equal("Workspace not found"))
		})

		It("returns 403 when the user is not the admin", func() {
			svc.verifyWorkspaceAdminFn = func(*model.Workspace, int64) error {
				return service.NewForbiddenWorkspaceError("")
			}
			svc.updateWorkspaceTitleFn = func(context.Context, int64, string) (*model.Workspace, error) {
				Fail("update should not run for non-admins")
				return nil, nil
			}

			w := doJSON(router, http.MethodPut, path, `{"title":"Renamed"}`)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeMessage(w)).To(Equal("You do not have permission to access this workspace"))
		})

		It("returns 400 on a malformed workspace id", func() {
			w := doJSON(router, http.MethodPut, "/workspaces/abc/title", `{"title":"Renamed"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DeleteWorkspace", func() {
		It("returns 200 and forwards shouldDeleteForms", func() {
			var gotDeleteForms bool
			svc.deleteWorkspaceFn = func(_ context.Context, wsID, uID int64, shouldDeleteForms bool) error {
				Expect(wsID).To(Equal(workspaceID))
				Expect(uID).To(Equal(userID))
				gotDeleteForms = shouldDeleteForms
				return nil
			}

			w := doJSON(router, http.MethodDelete, "/workspaces/2002", `{"should_delete_forms":true}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotDeleteForms).To(BeTrue())
			Expect(decodeMessage(w)).To(Equal("Successfully deleted workspace"))
		})

		It("accepts a request without a body", func() {
			w := doJSON(router, http.MethodDelete, "/workspaces/2002", "")
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("reads a chunked body with no declared length", func() {
			var gotDeleteForms bool
			svc.deleteWorkspaceFn = func(_ context.Context, _, _ int64, shouldDeleteForms bool) error {
				gotDeleteForms = shouldDeleteForms
				return nil
			}

			req := httptest.NewRequest(http.MethodDelete, "/workspaces/2002", strings.NewReader(`{"should_delete_forms":true}`))
			req.Header.Set("Content-Type", "application/json")
			req.ContentLength = -1
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotDeleteForms).To(BeTrue())
		})

		It("returns 400 on a malformed body", func() {
			svc.deleteWorkspaceFn = func(context.Context, int64, int64, bool) error {
				Fail("service should not be called")
				return nil
			}

			w := doJSON(router, http.MethodDelete, "/workspaces/2002", `{"should_delete_forms":`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("maps service failures",
			func(err error, status int, message string) {
				svc.deleteWorkspaceFn = func(context.Context, int64, int64, bool) error { return err }

				w := doJSON(router, http.MethodDelete, "/workspaces/2002", "")

				Expect(w.Code).To(Equal(status))
				Expect(decodeMessage(w)).To(Equal(message))
			},
			Entry("database error", service.NewDatabaseError("some error", nil), http.StatusInternalServerError, "some error"),
			Entry("database conflict", service.NewDatabaseConflictError("some conflict", nil), http.StatusConflict, "some conflict"),
			Entry("not found", service.NewWorkspaceNotFoundError("some error"), http.StatusNotFound, "some error"),
			Entry("forbidden", service.NewForbiddenWorkspaceError("some error"), http.StatusForbidden, "some error"),
			Entry("unexpected", errors.New("boom"), http.StatusInternalServerError, "Something went wrong. Please try again."),
		)
	})

	Describe("MoveForms", func() {
		It("returns 200 with the destination workspace", func() {
			svc.moveFormsFn = func(_ context.Context, uID, src, dest int64, formIDs []int64) (*model.Workspace, error) {
				Expect(uID).To(Equal(userID))
				Expect(src).To(Equal(workspaceID))
				Expect(dest).To(Equal(int64(3003)))
				Expect(formIDs).To(Equal([]int64{11, 12}))
				return &model.Workspace{ID: dest, Title: "Dest", AdminUserID: uID, FormIDs: formIDs}, nil
			}

			w := doJSON(router, http.MethodPost, "/workspaces/2002/move",
				`{"form_ids":["11","12"],"dest_workspace_id":"3003"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["form_ids"]).To(ConsistOf("11", "12"))
		})

		It("returns 400 when form_ids is empty", func() {
			w := doJSON(router, http.MethodPost, "/workspaces/2002/move",
				`{"form_ids":[],"dest_workspace_id":"3003"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 403 when a form is not owned by the user", func() {
			svc.moveFormsFn = func(context.Context, int64, int64, int64, []int64) (*model.Workspace, error) {
				return nil, service.NewForbiddenFormError("")
			}

			w := doJSON(router, http.MethodPost, "/workspaces/2002/move",
				`{"form_ids":["11"],"dest_workspace_id":"3003"}`)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeMessage(w)).To(Equal("You do not have permission to access this form"))
		})
	})
})
