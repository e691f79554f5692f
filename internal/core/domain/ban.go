package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ban is an append-only audit entry written alongside a role transition to
// banned.
type Ban struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Reason    string    `json:"reason"`
	BannedBy  uuid.UUID `json:"banned_by"`
	CreatedAt time.Time `json:"created_at"`
}
