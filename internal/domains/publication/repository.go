package publication

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for publications and authorships.
type Repository interface {
	// Create inserts a new publication.
	// Errors: ErrDuplicateCanonicalKey, ErrConferenceMissing.
	Create(ctx context.Context, p *Publication) (*Publication, error)

	// GetByID retrieves a publication by UUID.
	// Errors: ErrPublicationNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Publication, error)

	// GetByCanonicalKey retrieves a publication by its import identity.
	// Errors: ErrPublicationNotFound.
	GetByCanonicalKey(ctx context.Context, key string) (*Publication, error)

	// List returns publications matching the filter.
	List(ctx context.Context, filter PublicationFilter) ([]Publication, error)

	// Update applies a partial update; nil request fields keep current
	// values. The service has already checked the presenter rule.
	// Errors: ErrPublicationNotFound, ErrAuthorMissing.
	Update(ctx context.Context, id uuid.UUID, req *UpdatePublicationRequest) (*Publication, error)

	// ClearPresenter nulls the presenter annotation. Update cannot express
	// this: a nil presenter there means "keep current".
	// Errors: ErrPublicationNotFound.
	ClearPresenter(ctx context.Context, id uuid.UUID, modifier string) (*Publication, error)

	// Delete removes a publication; its authorships cascade.
	// Errors: ErrPublicationNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddAuthorship lists an author on a publication.
	// Errors: ErrDuplicateAuthorship, ErrDuplicatePosition,
	// ErrPublicationNotFound, ErrAuthorMissing.
	AddAuthorship(ctx context.Context, a *Authorship) (*Authorship, error)

	// GetAuthorship retrieves one authorship.
	// Errors: ErrAuthorshipNotFound.
	GetAuthorship(ctx context.Context, id uuid.UUID) (*Authorship, error)

	// ListAuthorships returns authorships matching the filter,
	// ordered by author position.
	ListAuthorships(ctx context.Context, filter AuthorshipFilter) ([]Authorship, error)

	// UpdateAuthorship applies a partial update.
	// Errors: ErrAuthorshipNotFound, ErrDuplicatePosition.
	UpdateAuthorship(ctx context.Context, id uuid.UUID, req *UpdateAuthorshipRequest) (*Authorship, error)

	// DeleteAuthorship removes an authorship and, in the same transaction,
	// clears the publication's presenter when the deleted row backed it.
	// Errors: ErrAuthorshipNotFound.
	DeleteAuthorship(ctx context.Context, id uuid.UUID) error

	// AuthorshipExists reports whether the author is listed on the
	// publication. Used for the presenter-is-author check.
	AuthorshipExists(ctx context.Context, publicationID, authorID uuid.UUID) (bool, error)
}
