package service

import (
	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
)

// Actor identifies the authenticated caller of a service operation. The role
// comes from the caller's token claims, so it is fixed for the lifetime of
// the session and authorization never needs a user lookup.
type Actor struct {
	ID   uuid.UUID
	Role domain.Role
}
