package store

import (
	"context"
	"errors"

	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a uniqueness constraint
var ErrConflict = errors.New("conflict")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValidByTokenHash(ctx context.Context, tokenHash []byte) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	DeleteByTokenHash(ctx context.Context, tokenHash []byte) error
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	ListByAdmin(ctx context.Context, adminUserID int64) ([]model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	UpdateTitle(ctx context.Context, id int64, title string) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) error
	// AddForms appends forms after the workspace's existing ones.
	AddForms(ctx context.Context, workspaceID int64, formIDs []int64) error
	// RemoveForms detaches forms from whichever workspace holds them.
	RemoveForms(ctx context.Context, formIDs []int64) error
}

// FormStore defines the contract for form data access
type FormStore interface {
	GetByID(ctx context.Context, id int64) (*model.Form, error)
	ListByAdmin(ctx context.Context, adminUserID int64) ([]model.Form, error)
	Create(ctx context.Context, form *model.Form) error
	Update(ctx context.Context, form *model.Form) error
	Archive(ctx context.Context, adminUserID int64, formIDs []int64) (int64, error)
	CountOwned(ctx context.Context, adminUserID int64, formIDs []int64) (int64, error)
}

// SubmissionStore defines the contract for submission data access
type SubmissionStore interface {
	Create(ctx context.Context, sub *model.Submission) error
}
