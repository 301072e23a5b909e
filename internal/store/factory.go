package store

import (
	"github.com/Primesh-FL/FormSG/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

func (s *Stores) Forms() FormStore {
	return newFormStore(s.queries)
}

func (s *Stores) Submissions() SubmissionStore {
	return newSubmissionStore(s.queries)
}
