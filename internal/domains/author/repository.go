package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for authors and their name variants.
type Repository interface {
	// Create inserts a new author with its precomputed normalized name.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves an author by UUID.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns authors matching the filter,
	// ordered by family name then given name.
	List(ctx context.Context, filter AuthorFilter) ([]Author, error)

	// Update writes the full author row (the service merges partial updates
	// and recomputes the normalized name before calling this).
	// Errors: ErrAuthorNotFound.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes an author. Presenter references are cleared by the
	// schema (SET NULL); authorships and committee roles block deletion.
	// Errors: ErrAuthorNotFound, ErrAuthorInUse.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// AddVariant inserts a name variant.
	// Errors: ErrDuplicateVariant on (author, normalized_variant) collision,
	// ErrAuthorNotFound when the author is gone.
	AddVariant(ctx context.Context, v *NameVariant) (*NameVariant, error)

	// ListVariants returns an author's variants ordered by variant name.
	ListVariants(ctx context.Context, authorID uuid.UUID) ([]NameVariant, error)

	// DeleteVariant removes one variant of the given author.
	// Errors: ErrVariantNotFound.
	DeleteVariant(ctx context.Context, authorID, variantID uuid.UUID) error

	// FindCandidates returns authors whose normalized name or any variant
	// matches one of the given forms, or whose normalized name contains the
	// family token. MatchedVariant is set when a variant produced the hit.
	FindCandidates(ctx context.Context, normalizedForms []string, familyToken string) ([]MatchCandidate, error)

	// LatestAffiliation returns the most recent point-in-time affiliation
	// across the author's authorships and committee roles, ordered by
	// conference year, then record recency. Nil when nothing is recorded.
	LatestAffiliation(ctx context.Context, authorID uuid.UUID) (*string, error)
}
