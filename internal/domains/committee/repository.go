package committee

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for committee roles.
type Repository interface {
	// Create inserts a new role assignment.
	// Errors: ErrDuplicateRole on a tuple collision,
	// ErrConferenceMissing/ErrAuthorMissing on broken references.
	Create(ctx context.Context, role *Role) (*Role, error)

	// GetByID retrieves a role by UUID.
	// Errors: ErrRoleNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Role, error)

	// List returns roles matching the filter,
	// ordered by committee then position.
	List(ctx context.Context, filter RoleFilter) ([]Role, error)

	// Update applies a partial update to the non-identity columns.
	// Errors: ErrRoleNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdateRoleRequest) (*Role, error)

	// Delete removes a role.
	// Errors: ErrRoleNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
