package model

import (
	"time"

	"github.com/Primesh-FL/FormSG/internal/logic"
)

type FormStatus string

const (
	FormStatusPrivate  FormStatus = "PRIVATE"
	FormStatusPublic   FormStatus = "PUBLIC"
	FormStatusArchived FormStatus = "ARCHIVED"
)

func (s FormStatus) IsValid() bool {
	switch s {
	case FormStatusPrivate, FormStatusPublic, FormStatusArchived:
		return true
	}
	return false
}

type Form struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	AdminUserID int64         `json:"admin_user_id"`
	Status      FormStatus    `json:"status"`
	Fields      []logic.Field `json:"fields"`
	Logics      []logic.Logic `json:"logics"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (f *Form) IsAdmin(userID int64) bool {
	return f.AdminUserID == userID
}
