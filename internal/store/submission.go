package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Primesh-FL/FormSG/core/db/sqlc"
	"github.com/Primesh-FL/FormSG/internal/logic"
	"github.com/Primesh-FL/FormSG/internal/model"
)

type submissionStore struct {
	queries *sqlc.Queries
}

func newSubmissionStore(queries *sqlc.Queries) SubmissionStore {
	return &submissionStore{queries: queries}
}

func (s *submissionStore) Create(ctx context.Context, sub *model.Submission) error {
	responses := sub.Responses
	if responses == nil {
		responses = logic.Inputs{}
	}
	raw, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}

	row, err := s.queries.CreateSubmission(ctx, sqlc.CreateSubmissionParams{
		ID:        sub.ID,
		FormID:    sub.FormID,
		Responses: raw,
	})
	if err != nil {
		return err
	}

	sub.ID = row.ID
	sub.FormID = row.FormID
	sub.CreatedAt = row.CreatedAt.Time
	return nil
}
