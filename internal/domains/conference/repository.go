package conference

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for conferences.
// An interface so service tests can swap in an in-memory implementation.
type Repository interface {
	// Create inserts a new conference.
	// Errors: ErrDuplicateConference on a (venue, year) collision.
	Create(ctx context.Context, c *Conference) (*Conference, error)

	// GetByID retrieves a conference by UUID.
	// Errors: ErrConferenceNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Conference, error)

	// GetByVenueYear retrieves a conference by its natural key.
	// Errors: ErrConferenceNotFound.
	GetByVenueYear(ctx context.Context, venue Venue, year int) (*Conference, error)

	// List returns conferences matching the filter,
	// ordered by year descending then venue.
	List(ctx context.Context, filter ConferenceFilter) ([]Conference, error)

	// Update applies a partial update; nil request fields keep current values.
	// Errors: ErrConferenceNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdateConferenceRequest) (*Conference, error)

	// Delete removes a conference.
	// Errors: ErrConferenceNotFound, ErrConferenceInUse when publications
	// or committee roles still reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
