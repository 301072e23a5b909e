package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Primesh-FL/FormSG/common/id"
	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/store"
)

// WorkspaceService returns *DatabaseError, *DatabaseConflictError,
// *WorkspaceNotFoundError, *ForbiddenWorkspaceError or *ForbiddenFormError.
type WorkspaceService interface {
	GetWorkspaces(ctx context.Context, userID int64) ([]model.Workspace, error)
	CreateWorkspace(ctx context.Context, userID int64, title string) (*model.Workspace, error)
	GetWorkspace(ctx context.Context, workspaceID int64) (*model.Workspace, error)
	VerifyWorkspaceAdmin(ws *model.Workspace, userID int64) error
	UpdateWorkspaceTitle(ctx context.Context, workspaceID int64, title string) (*model.Workspace, error)
	DeleteWorkspace(ctx context.Context, workspaceID, userID int64, shouldDeleteForms bool) error
	MoveForms(ctx context.Context, userID, sourceWorkspaceID, destWorkspaceID int64, formIDs []int64) (*model.Workspace, error)
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
	txRunner       TxRunner
}

func NewWorkspaceService(workspaceStore store.WorkspaceStore, txRunner TxRunner) WorkspaceService {
	return &workspaceService{
		workspaceStore: workspaceStore,
		txRunner:       txRunner,
	}
}

func (s *workspaceService) GetWorkspaces(ctx context.Context, userID int64) ([]model.Workspace, error) {
	workspaces, err := s.workspaceStore.ListByAdmin(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list workspaces", "error", err, "user_id", userID)
		return nil, NewDatabaseError("", fmt.Errorf("listing workspaces: %w", err))
	}
	if workspaces == nil {
		workspaces = []model.Workspace{}
	}
	return workspaces, nil
}

func (s *workspaceService) CreateWorkspace(ctx context.Context, userID int64, title string) (*model.Workspace, error) {
	ws := &model.Workspace{
		ID:          id.New(),
		Title:       title,
		AdminUserID: userID,
	}

	if err := s.workspaceStore.Create(ctx, ws); err != nil {
		if errors.Is(err, store.ErrConflict) {
			slog.InfoContext(ctx, "duplicate workspace title", "user_id", userID, "title", title)
			return nil, NewDatabaseConflictError("", err)
		}
		slog.ErrorContext(ctx, "failed to create workspace", "error", err, "user_id", userID)
		return nil, NewDatabaseError("", fmt.Errorf("creating workspace: %w", err))
	}

	slog.InfoContext(ctx, "workspace created", "workspace_id", ws.ID, "user_id", userID)
	return ws, nil
}

func (s *workspaceService) GetWorkspace(ctx context.Context, workspaceID int64) (*model.Workspace, error) {
	ws, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewWorkspaceNotFoundError("")
		}
		slog.ErrorContext(ctx, "failed to get workspace", "error", err, "workspace_id", workspaceID)
		return nil, NewDatabaseError("", fmt.Errorf("getting workspace: %w", err))
	}
	return ws, nil
}

func (s *workspaceService) VerifyWorkspaceAdmin(ws *model.Workspace, userID int64) error {
	if ws == nil || !ws.IsAdmin(userID) {
		return NewForbiddenWorkspaceError("")
	}
	return nil
}

func (s *workspaceService) UpdateWorkspaceTitle(ctx context.Context, workspaceID int64, title string) (*model.Workspace, error) {
	ws, err := s.workspaceStore.UpdateTitle(ctx, workspaceID, title)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, NewWorkspaceNotFoundError("")
		case errors.Is(err, store.ErrConflict):
			return nil, NewDatabaseConflictError("", err)
		}
		slog.ErrorContext(ctx, "failed to update workspace title", "error", err, "workspace_id", workspaceID)
		return nil, NewDatabaseError("", fmt.Errorf("updating workspace title: %w", err))
	}
	return ws, nil
}

func (s *workspaceService) DeleteWorkspace(ctx context.Context, workspaceID, userID int64, shouldDeleteForms bool) error {
	sc := logger.StartSpan(ctx, "service.workspace.delete")
	defer sc.End()

	err := s.deleteWorkspace(sc.Context(), workspaceID, userID, shouldDeleteForms)
	sc.RecordError(err)
	return err
}

func (s *workspaceService) deleteWorkspace(ctx context.Context, workspaceID, userID int64, shouldDeleteForms bool) error {
	ws, err := s.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	if err := s.VerifyWorkspaceAdmin(ws, userID); err != nil {
		return err
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if shouldDeleteForms && len(ws.FormIDs) > 0 {
			if _, err := stores.Forms().Archive(ctx, userID, ws.FormIDs); err != nil {
				return fmt.Errorf("archiving forms: %w", err)
			}
		}
		if err := stores.Workspaces().Delete(ctx, ws.ID); err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewWorkspaceNotFoundError("")
		}
		slog.ErrorContext(ctx, "failed to delete workspace", "error", err, "workspace_id", workspaceID)
		return NewDatabaseError("", err)
	}

	slog.InfoContext(ctx, "workspace deleted",
		"workspace_id", workspaceID,
		"user_id", userID,
		"archived_forms", shouldDeleteForms && len(ws.FormIDs) > 0,
	)
	return nil
}

// MoveForms detaches formIDs from whichever workspace holds them and
// appends them to the destination. The caller must administer both
// workspaces and own every form.
func (s *workspaceService) MoveForms(ctx context.Context, userID, sourceWorkspaceID, destWorkspaceID int64, formIDs []int64) (*model.Workspace, error) {
	sc := logger.StartSpan(ctx, "service.workspace.move_forms")
	defer sc.End()

	ws, err := s.moveForms(sc.Context(), userID, sourceWorkspaceID, destWorkspaceID, formIDs)
	sc.RecordError(err)
	return ws, err
}

func (s *workspaceService) moveForms(ctx context.Context, userID, sourceWorkspaceID, destWorkspaceID int64, formIDs []int64) (*model.Workspace, error) {
	source, err := s.GetWorkspace(ctx, sourceWorkspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.VerifyWorkspaceAdmin(source, userID); err != nil {
		return nil, err
	}

	dest := source
	if destWorkspaceID != sourceWorkspaceID {
		dest, err = s.GetWorkspace(ctx, destWorkspaceID)
		if err != nil {
			return nil, err
		}
		if err := s.VerifyWorkspaceAdmin(dest, userID); err != nil {
			return nil, err
		}
	}

	ids := uniqueIDs(formIDs)
	if len(ids) == 0 {
		return dest, nil
	}

	var moved *model.Workspace
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		owned, err := stores.Forms().CountOwned(ctx, userID, ids)
		if err != nil {
			return fmt.Errorf("counting owned forms: %w", err)
		}
		if owned != int64(len(ids)) {
			return NewForbiddenFormError("")
		}

		if err := stores.Workspaces().RemoveForms(ctx, ids); err != nil {
			return fmt.Errorf("detaching forms: %w", err)
		}
		if err := stores.Workspaces().AddForms(ctx, dest.ID, ids); err != nil {
			return fmt.Errorf("adding forms to workspace: %w", err)
		}

		moved, err = stores.Workspaces().GetByID(ctx, dest.ID)
		if err != nil {
			return fmt.Errorf("reloading workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		var forbidden *ForbiddenFormError
		if errors.As(err, &forbidden) {
			return nil, forbidden
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewWorkspaceNotFoundError("")
		}
		slog.ErrorContext(ctx, "failed to move forms", "error", err, "dest_workspace_id", destWorkspaceID)
		return nil, NewDatabaseError("", err)
	}

	slog.InfoContext(ctx, "forms moved",
		"source_workspace_id", sourceWorkspaceID,
		"dest_workspace_id", destWorkspaceID,
		"count", len(ids),
	)
	return moved, nil
}

func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
