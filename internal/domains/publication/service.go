package publication

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for publications and authorships,
// including the presenter-is-author rule.
type Service interface {
	// Create registers a publication. Presenter cannot be set at creation.
	// Errors: validation errors, ErrDuplicateCanonicalKey,
	// ErrConferenceMissing.
	Create(ctx context.Context, req *CreatePublicationRequest) (*Publication, error)

	// GetByID retrieves a publication.
	// Errors: ErrPublicationNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Publication, error)

	// GetByCanonicalKey retrieves a publication by its import identity.
	// Errors: ErrPublicationNotFound.
	GetByCanonicalKey(ctx context.Context, key string) (*Publication, error)

	// List returns publications matching the filter.
	List(ctx context.Context, filter PublicationFilter) ([]Publication, error)

	// Update applies a partial update. A presenter being set or changed must
	// be one of the listed authors.
	// Errors: validation errors, ErrPresenterNotListed,
	// ErrPublicationNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdatePublicationRequest) (*Publication, error)

	// ClearPresenter removes the presenter annotation without touching
	// anything else. The presenter is soft metadata; clearing it is always
	// allowed.
	// Errors: ErrPublicationNotFound.
	ClearPresenter(ctx context.Context, id uuid.UUID, modifier string) (*Publication, error)

	// Delete removes a publication and its authorships.
	// Errors: ErrPublicationNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddAuthorship lists an author on a publication.
	// Errors: validation errors, ErrDuplicateAuthorship,
	// ErrDuplicatePosition, ErrPublicationNotFound, ErrAuthorMissing.
	AddAuthorship(ctx context.Context, publicationID uuid.UUID, req *AddAuthorshipRequest) (*Authorship, error)

	// GetAuthorship retrieves one authorship.
	// Errors: ErrAuthorshipNotFound.
	GetAuthorship(ctx context.Context, id uuid.UUID) (*Authorship, error)

	// ListAuthorships returns authorships matching the filter.
	ListAuthorships(ctx context.Context, filter AuthorshipFilter) ([]Authorship, error)

	// UpdateAuthorship applies a partial update.
	// Errors: validation errors, ErrAuthorshipNotFound, ErrDuplicatePosition.
	UpdateAuthorship(ctx context.Context, id uuid.UUID, req *UpdateAuthorshipRequest) (*Authorship, error)

	// DeleteAuthorship removes an authorship, clearing the publication's
	// presenter in the same transaction when it backed it.
	// Errors: ErrAuthorshipNotFound.
	DeleteAuthorship(ctx context.Context, id uuid.UUID) error
}
