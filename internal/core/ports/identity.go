package ports

import (
	"context"

	"github.com/google/uuid"
)

// Identity is a verified caller.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// IdentityVerifier exchanges a bearer token for a verified identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
