package model

import "time"

// Workspace groups forms for a single admin. FormIDs keeps the display order.
type Workspace struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	AdminUserID int64     `json:"admin_user_id"`
	FormIDs     []int64   `json:"form_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (w *Workspace) IsAdmin(userID int64) bool {
	return w.AdminUserID == userID
}
