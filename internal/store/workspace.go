package store

import (
	"context"
	"errors"

	"github.com/Primesh-FL/FormSG/core/db/sqlc"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/jackc/pgx/v5"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.Workspace{
		ID:          row.ID,
		Title:       row.Title,
		AdminUserID: row.AdminUserID,
		FormIDs:     nonNil(row.FormIds),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}, nil
}

func (s *workspaceStore) ListByAdmin(ctx context.Context, adminUserID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesByAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = model.Workspace{
			ID:          row.ID,
			Title:       row.Title,
			AdminUserID: row.AdminUserID,
			FormIDs:     nonNil(row.FormIds),
			CreatedAt:   row.CreatedAt.Time,
			UpdatedAt:   row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:          ws.ID,
		Title:       ws.Title,
		AdminUserID: ws.AdminUserID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	*ws = model.Workspace{
		ID:          row.ID,
		Title:       row.Title,
		AdminUserID: row.AdminUserID,
		FormIDs:     []int64{},
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	return nil
}

func (s *workspaceStore) UpdateTitle(ctx context.Context, id int64, title string) (*model.Workspace, error) {
	n, err := s.queries.UpdateWorkspaceTitle(ctx, sqlc.UpdateWorkspaceTitleParams{
		ID:    id,
		Title: title,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteWorkspace(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *workspaceStore) AddForms(ctx context.Context, workspaceID int64, formIDs []int64) error {
	if len(formIDs) == 0 {
		return nil
	}
	if err := s.queries.AddFormsToWorkspace(ctx, sqlc.AddFormsToWorkspaceParams{
		WorkspaceID: workspaceID,
		FormIds:     formIDs,
	}); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return s.queries.TouchWorkspace(ctx, workspaceID)
}

func (s *workspaceStore) RemoveForms(ctx context.Context, formIDs []int64) error {
	if len(formIDs) == 0 {
		return nil
	}
	return s.queries.RemoveFormsFromWorkspaces(ctx, formIDs)
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
