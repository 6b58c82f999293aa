package conference

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the conference domain.
type Service interface {
	// Create registers a new conference edition.
	// Errors: validation errors, ErrDuplicateConference.
	Create(ctx context.Context, req *CreateConferenceRequest) (*Conference, error)

	// GetByID retrieves a conference.
	// Errors: ErrConferenceNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Conference, error)

	// GetBySlug resolves a handle like "QIP2024".
	// Errors: ErrInvalidSlug, ErrConferenceNotFound.
	GetBySlug(ctx context.Context, slug string) (*Conference, error)

	// List returns conferences matching the filter.
	List(ctx context.Context, filter ConferenceFilter) ([]Conference, error)

	// Update applies a partial update. Venue and year are immutable.
	// Errors: validation errors, ErrConferenceNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdateConferenceRequest) (*Conference, error)

	// Delete removes a conference that nothing references.
	// Errors: ErrConferenceNotFound, ErrConferenceInUse.
	Delete(ctx context.Context, id uuid.UUID) error
}
