package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the author domain, including the
// dedup heuristics built on the name normalizer.
type Service interface {
	// Create registers a new author; the normalized matching key is derived
	// from the full name.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves an author.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns authors matching the filter.
	List(ctx context.Context, filter AuthorFilter) ([]Author, error)

	// Update applies a partial update; a changed full name recomputes the
	// normalized matching key.
	// Errors: validation errors, ErrAuthorNotFound.
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes an author nothing depends on. Publications that list
	// the author as presenter have the presenter cleared by the store.
	// Errors: ErrAuthorNotFound, ErrAuthorInUse.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVariant registers an alternate name form.
	// Errors: ErrAuthorNotFound, ErrDuplicateVariant.
	AddVariant(ctx context.Context, authorID uuid.UUID, req *AddVariantRequest) (*NameVariant, error)

	// ListVariants returns an author's name variants.
	// Errors: ErrAuthorNotFound.
	ListVariants(ctx context.Context, authorID uuid.UUID) ([]NameVariant, error)

	// DeleteVariant removes one variant.
	// Errors: ErrVariantNotFound.
	DeleteVariant(ctx context.Context, authorID, variantID uuid.UUID) error

	// FindMatches suggests existing authors that may be the same person as
	// the given display name, best score first. Purely advisory.
	FindMatches(ctx context.Context, name string, limit int) ([]MatchCandidate, error)

	// RecomputeAffiliation sets the author's current affiliation from the
	// most recent authorship or committee-role affiliation. Explicit
	// operation; nothing triggers it automatically.
	// Errors: ErrAuthorNotFound.
	RecomputeAffiliation(ctx context.Context, id uuid.UUID, modifier string) (*Author, error)
}
