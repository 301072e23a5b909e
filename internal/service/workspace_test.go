package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Primesh-FL/FormSG/common/id"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/service"
	"github.com/Primesh-FL/FormSG/internal/store"
)

var _ = Describe("WorkspaceService", func() {
	const adminID int64 = 100

	var (
		svc        service.WorkspaceService
		workspaces *mockWorkspaceStore
		forms      *mockFormStore
		txCalls    int
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		workspaces = &mockWorkspaceStore{}
		forms = &mockFormStore{}
		txCalls = 0
		svc = service.NewWorkspaceService(workspaces, &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				txCalls++
				return fn(&mockStoreProvider{workspaces: workspaces, forms: forms})
			},
		})
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("GetWorkspaces", func() {
		It("returns the admin's workspaces", func() {
			workspaces.listByAdminFn = func(_ context.Context, adminUserID int64) ([]model.Workspace, error) {
				Expect(adminUserID).To(Equal(adminID))
				return []model.Workspace{{ID: 1, Title: "A", AdminUserID: adminID}}, nil
			}

			got, err := svc.GetWorkspaces(ctx, adminID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
		})

		It("returns an empty slice when there are none", func() {
			got, err := svc.GetWorkspaces(ctx, adminID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).NotTo(BeNil())
			Expect(got).To(BeEmpty())
		})

		It("wraps store failures in a DatabaseError", func() {
			workspaces.listByAdminFn = func(context.Context, int64) ([]model.Workspace, error) {
				return nil, errors.New("connection reset")
			}

			_, err := svc.GetWorkspaces(ctx, adminID)
			var dbErr *service.DatabaseError
			Expect(errors.As(err, &dbErr)).To(BeTrue())
			Expect(dbErr.Message).To(Equal("Error occurred while accessing the database"))
		})
	})

	Describe("CreateWorkspace", func() {
		It("creates a workspace owned by the user", func() {
			workspaces.createFn = func(_ context.Context, ws *model.Workspace) error {
				Expect(ws.ID).NotTo(BeZero())
				Expect(ws.Title).To(Equal("Team forms"))
				Expect(ws.AdminUserID).To(Equal(adminID))
				return nil
			}

			ws, err := svc.CreateWorkspace(ctx, adminID, "Team forms")
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Title).To(Equal("Team forms"))
		})

		It("maps a duplicate title to DatabaseConflictError", func() {
			workspaces.createFn = func(context.Context, *model.Workspace) error {
				return store.ErrConflict
			}

			_, err := svc.CreateWorkspace(ctx, adminID, "Team forms")
			var conflict *service.DatabaseConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
			Expect(conflict.Message).To(Equal("A workspace with this title already exists"))
		})

		It("maps other failures to DatabaseError", func() {
			workspaces.createFn = func(context.Context, *model.Workspace) error {
				return errors.New("boom")
			}

			_, err := svc.CreateWorkspace(ctx, adminID, "Team forms")
			var dbErr *service.DatabaseError
			Expect(errors.As(err, &dbErr)).To(BeTrue())
		})
	})

	Describe("GetWorkspace and VerifyWorkspaceAdmin", func() {
		It("returns WorkspaceNotFoundError for a missing workspace", func() {
			_, err := svc.GetWorkspace(ctx, 42)
			var notFound *service.WorkspaceNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Message).To(Equal("Workspace not found"))
		})

		It("rejects users who are not the admin", func() {
			err := svc.VerifyWorkspaceAdmin(&model.Workspace{ID: 1, AdminUserID: adminID}, 7)
			var forbidden *service.ForbiddenWorkspaceError
			Expect(errors.As(err, &forbidden)).To(BeTrue())
		})

		It("accepts the admin", func() {
			Expect(svc.VerifyWorkspaceAdmin(&model.Workspace{ID: 1, AdminUserID: adminID}, adminID)).To(Succeed())
		})
	})

	Describe("UpdateWorkspaceTitle", func() {
		It("returns the updated workspace", func() {
			workspaces.updateTitleFn = func(_ context.Context, wsID int64, title string) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, Title: title, AdminUserID: adminID}, nil
			}

			ws, err := svc.UpdateWorkspaceTitle(ctx, 5, "Renamed")
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Title).To(Equal("Renamed"))
		})

		It("maps conflicts and missing rows", func() {
			workspaces.updateTitleFn = func(context.Context, int64, string) (*model.Workspace, error) {
				return nil, store.ErrConflict
			}
			_, err := svc.UpdateWorkspaceTitle(ctx, 5, "Renamed")
			var conflict *service.DatabaseConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())

			workspaces.updateTitleFn = func(context.Context, int64, string) (*model.Workspace, error) {
				return nil, store.ErrNotFound
			}
			_, err = svc.UpdateWorkspaceTitle(ctx, 5, "Renamed")
			var notFound *service.WorkspaceNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Describe("DeleteWorkspace", func() {
		BeforeEach(func() {
			workspaces.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, AdminUserID: adminID, FormIDs: []int64{11, 12}}, nil
			}
		})

		It("deletes without touching forms by default", func() {
			Expect(svc.DeleteWorkspace(ctx, 5, adminID, false)).To(Succeed())
			Expect(workspaces.deleteCalls).To(Equal(1))
			Expect(forms.archiveCalls).To(BeZero())
			Expect(txCalls).To(Equal(1))
		})

		It("archives the workspace's forms when asked", func() {
			forms.archiveFn = func(_ context.Context, adminUserID int64, formIDs []int64) (int64, error) {
				Expect(adminUserID).To(Equal(adminID))
				Expect(formIDs).To(Equal([]int64{11, 12}))
				return 2, nil
			}

			Expect(svc.DeleteWorkspace(ctx, 5, adminID, true)).To(Succeed())
			Expect(forms.archiveCalls).To(Equal(1))
		})

		It("refuses non-admins before opening a transaction", func() {
			err := svc.DeleteWorkspace(ctx, 5, 999, false)
			var forbidden *service.ForbiddenWorkspaceError
			Expect(errors.As(err, &forbidden)).To(BeTrue())
			Expect(txCalls).To(BeZero())
		})

		Context("with tracing", func() {
			var (
				recorder *tracetest.SpanRecorder
				prev     trace.TracerProvider
			)

			BeforeEach(func() {
				prev = otel.GetTracerProvider()
				recorder = tracetest.NewSpanRecorder()
				otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
			})

			AfterEach(func() {
				otel.SetTracerProvider(prev)
			})

			It("records a span per delete", func() {
				Expect(svc.DeleteWorkspace(ctx, 5, adminID, false)).To(Succeed())

				ended := recorder.Ended()
				Expect(ended).To(HaveLen(1))
				Expect(ended[0].Name()).To(Equal("service.workspace.delete"))
				Expect(ended[0].Status().Code).NotTo(Equal(codes.Error))
			})

			It("marks the span failed when the delete is refused", func() {
				Expect(svc.DeleteWorkspace(ctx, 5, 999, false)).NotTo(Succeed())

				Expect(recorder.Ended()[0].Status().Code).To(Equal(codes.Error))
			})
		})

		It("reports a missing workspace", func() {
			workspaces.getByIDFn = nil

			err := svc.DeleteWorkspace(ctx, 5, adminID, false)
			var notFound *service.WorkspaceNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("maps a failed delete to DatabaseError", func() {
			workspaces.deleteFn = func(context.Context, int64) error {
				return errors.New("deadlock detected")
			}

			err := svc.DeleteWorkspace(ctx, 5, adminID, false)
			var dbErr *service.DatabaseError
			Expect(errors.As(err, &dbErr)).To(BeTrue())
		})
	})

	Describe("MoveForms", func() {
		var added []int64
		var removed []int64

		BeforeEach(func() {
			added, removed = nil, nil
			workspaces.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				ws := &model.Workspace{ID: wsID, AdminUserID: adminID}
				if len(added) > 0 && wsID == 2 {
					ws.FormIDs = added
				}
				return ws, nil
			}
			workspaces.removeFormsFn = func(_ context.Context, formIDs []int64) error {
				removed = formIDs
				return nil
			}
			workspaces.addFormsFn = func(_ context.Context, wsID int64, formIDs []int64) error {
				Expect(wsID).To(Equal(int64(2)))
				added = formIDs
				return nil
			}
		})

		It("detaches and appends forms to the destination", func() {
			ws, err := svc.MoveForms(ctx, adminID, 1, 2, []int64{11, 12, 11})
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal([]int64{11, 12}))
			Expect(added).To(Equal([]int64{11, 12}))
			Expect(ws.ID).To(Equal(int64(2)))
			Expect(ws.FormIDs).To(Equal([]int64{11, 12}))
		})

		It("rejects forms the user does not own", func() {
			forms.countOwnedFn = func(context.Context, int64, []int64) (int64, error) {
				return 1, nil
			}

			_, err := svc.MoveForms(ctx, adminID, 1, 2, []int64{11, 12})
			var forbidden *service.ForbiddenFormError
			Expect(errors.As(err, &forbidden)).To(BeTrue())
			Expect(added).To(BeNil())
		})

		It("requires admin rights on the destination", func() {
			workspaces.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				owner := adminID
				if wsID == 2 {
					owner = 555
				}
				return &model.Workspace{ID: wsID, AdminUserID: owner}, nil
			}

			_, err := svc.MoveForms(ctx, adminID, 1, 2, []int64{11})
			var forbidden *service.ForbiddenWorkspaceError
			Expect(errors.As(err, &forbidden)).To(BeTrue())
			Expect(txCalls).To(BeZero())
		})
	})
})
