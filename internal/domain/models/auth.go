package models

import "github.com/google/uuid"

// AdminIdentity is the identity decoded from a verified bearer token.
// Any valid admin token grants all gated operations; there is no per-admin
// permission scoping.
type AdminIdentity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
