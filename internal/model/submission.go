package model

import (
	"time"

	"github.com/Primesh-FL/FormSG/internal/logic"
)

type Submission struct {
	ID        int64        `json:"id"`
	FormID    int64        `json:"form_id"`
	Responses logic.Inputs `json:"responses"`
	CreatedAt time.Time    `json:"created_at"`
}
