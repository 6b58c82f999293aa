package committee

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for committee role assignments.
type Service interface {
	// Create registers a committee role.
	// Errors: validation errors, ErrDuplicateRole,
	// ErrConferenceMissing, ErrAuthorMissing.
	Create(ctx context.Context, req *CreateRoleRequest) (*Role, error)

	// GetByID retrieves a role.
	// Errors: ErrRoleNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Role, error)

	// List returns roles matching the filter.
	List(ctx context.Context, filter RoleFilter) ([]Role, error)

	// Update applies a partial update to the non-identity columns.
	// Errors: validation errors, ErrRoleNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdateRoleRequest) (*Role, error)

	// Delete removes a role.
	// Errors: ErrRoleNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
