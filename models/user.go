package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents which side of the marketplace a user is on
type UserRole string

const (
	RoleUnset  UserRole = ""
	RoleClient UserRole = "client"
	RoleLawyer UserRole = "lawyer"
)

// Valid reports whether r is a selectable role
func (r UserRole) Valid() bool {
	return r == RoleClient || r == RoleLawyer
}

// User represents a user entity
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
