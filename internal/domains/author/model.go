package author

import (
	"time"

	"github.com/google/uuid"

	"quantumdb-backend/internal/shared"
)

// Author is one unique human identity. NormalizedName is a matching key,
// deliberately not unique: distinct people can normalize identically.
type Author struct {
	ID             uuid.UUID `json:"id" db:"id"`
	FullName       string    `json:"full_name" db:"full_name"`
	FamilyName     *string   `json:"family_name" db:"family_name"`
	GivenName      *string   `json:"given_name" db:"given_name"`
	NormalizedName string    `json:"normalized_name" db:"normalized_name"`
	ORCID          *string   `json:"orcid" db:"orcid"`
	HomepageURL    *string   `json:"homepage_url" db:"homepage_url"`
	Affiliation    *string   `json:"affiliation" db:"affiliation"`

	Metadata shared.Metadata `json:"metadata" db:"metadata"`

	Creator   string    `json:"creator" db:"creator"`
	Modifier  string    `json:"modifier" db:"modifier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NameVariant is an alternate spelling/form of an author's name
// (maiden name, transliteration, abbreviation). Owned by the author.
type NameVariant struct {
	ID                uuid.UUID `json:"id" db:"id"`
	AuthorID          uuid.UUID `json:"author_id" db:"author_id"`
	VariantName       string    `json:"variant_name" db:"variant_name"`
	NormalizedVariant string    `json:"normalized_variant" db:"normalized_variant"`
	VariantType       *string   `json:"variant_type" db:"variant_type"`
	Notes             *string   `json:"notes" db:"notes"`

	Creator   string    `json:"creator" db:"creator"`
	Modifier  string    `json:"modifier" db:"modifier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MatchCandidate is a dedup suggestion: an existing author scored against a
// query name. A heuristic for humans and import tooling, never a constraint.
type MatchCandidate struct {
	Author         Author  `json:"author"`
	MatchedVariant *string `json:"matched_variant,omitempty"`
	Score          float64 `json:"score"`
}
