package models

import "github.com/google/uuid"

// Admin is provisioned out of band (cmd/create_admin) and never mutated
// through the HTTP surface.
type Admin struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash []byte    `db:"password" json:"-"`
}
