package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a profile's standing in the marketplace.
type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleBanned Role = "banned"
)

// Profile represents a marketplace identity. One row exists per identity,
// created on first authenticated request.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsBanned returns true if the profile may not create listings or check out.
func (p *Profile) IsBanned() bool {
	return p.Role == RoleBanned
}

// IsAdmin returns true if the profile may perform privileged actions.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
