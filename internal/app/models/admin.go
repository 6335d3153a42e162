package models

import "time"

// Admin defines the reviewer account model based on the 'admins' table.
// Every admin has identical rights; there is no permission matrix.
type Admin struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Username     string    `json:"username" db:"username" example:"admin"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Email        string    `json:"email" db:"email" example:"admin@school.edu"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
