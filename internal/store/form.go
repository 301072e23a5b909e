package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Primesh-FL/FormSG/core/db/sqlc"
	"github.com/Primesh-FL/FormSG/internal/logic"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/jackc/pgx/v5"
)

type formStore struct {
	queries *sqlc.Queries
}

func newFormStore(queries *sqlc.Queries) FormStore {
	return &formStore{queries: queries}
}

func (s *formStore) GetByID(ctx context.Context, id int64) (*model.Form, error) {
	row, err := s.queries.GetForm(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFormModel(row)
}

func (s *formStore) ListByAdmin(ctx context.Context, adminUserID int64) ([]model.Form, error) {
	rows, err := s.queries.ListFormsByAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Form, 0, len(rows))
	for _, row := range rows {
		f, err := toFormModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *f)
	}
	return result, nil
}

func (s *formStore) Create(ctx context.Context, form *model.Form) error {
	fields, logics, err := marshalDefinition(form)
	if err != nil {
		return err
	}

	row, err := s.queries.CreateForm(ctx, sqlc.CreateFormParams{
		ID:          form.ID,
		Title:       form.Title,
		AdminUserID: form.AdminUserID,
		Status:      string(form.Status),
		Fields:      fields,
		Logics:      logics,
	})
	if err != nil {
		return err
	}

	created, err := toFormModel(row)
	if err != nil {
		return err
	}
	*form = *created
	return nil
}

func (s *formStore) Update(ctx context.Context, form *model.Form) error {
	fields, logics, err := marshalDefinition(form)
	if err != nil {
		return err
	}

	row, err := s.queries.UpdateForm(ctx, sqlc.UpdateFormParams{
		ID:     form.ID,
		Title:  form.Title,
		Status: string(form.Status),
		Fields: fields,
		Logics: logics,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	updated, err := toFormModel(row)
	if err != nil {
		return err
	}
	*form = *updated
	return nil
}

func (s *formStore) Archive(ctx context.Context, adminUserID int64, formIDs []int64) (int64, error) {
	if len(formIDs) == 0 {
		return 0, nil
	}
	return s.queries.ArchiveForms(ctx, sqlc.ArchiveFormsParams{
		AdminUserID: adminUserID,
		Ids:         formIDs,
	})
}

func (s *formStore) CountOwned(ctx context.Context, adminUserID int64, formIDs []int64) (int64, error) {
	if len(formIDs) == 0 {
		return 0, nil
	}
	return s.queries.CountOwnedForms(ctx, sqlc.CountOwnedFormsParams{
		AdminUserID: adminUserID,
		Ids:         formIDs,
	})
}

func marshalDefinition(form *model.Form) (json.RawMessage, json.RawMessage, error) {
	fieldList := form.Fields
	if fieldList == nil {
		fieldList = []logic.Field{}
	}
	logicList := form.Logics
	if logicList == nil {
		logicList = []logic.Logic{}
	}

	fields, err := json.Marshal(fieldList)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal fields: %w", err)
	}
	logics, err := json.Marshal(logicList)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal logics: %w", err)
	}
	return fields, logics, nil
}

func toFormModel(row sqlc.Form) (*model.Form, error) {
	f := &model.Form{
		ID:          row.ID,
		Title:       row.Title,
		AdminUserID: row.AdminUserID,
		Status:      model.FormStatus(row.Status),
		Fields:      []logic.Field{},
		Logics:      []logic.Logic{},
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &f.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields of form %d: %w", row.ID, err)
		}
	}
	if len(row.Logics) > 0 {
		if err := json.Unmarshal(row.Logics, &f.Logics); err != nil {
			return nil, fmt.Errorf("unmarshal logics of form %d: %w", row.ID, err)
		}
	}
	return f, nil
}
