package author

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"quantumdb-backend/internal/shared"
)

var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// CreateAuthorRequest carries a new author record. The normalized matching
// key is derived by the service, never supplied by the caller.
type CreateAuthorRequest struct {
	FullName    string  `json:"full_name"`
	FamilyName  *string `json:"family_name,omitempty"`
	GivenName   *string `json:"given_name,omitempty"`
	ORCID       *string `json:"orcid,omitempty"`
	HomepageURL *string `json:"homepage_url,omitempty"`
	Affiliation *string `json:"affiliation,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Creator string `json:"creator"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.ORCID,
			validation.When(r.ORCID != nil,
				validation.Match(orcidPattern).Error("orcid must look like 0000-0000-0000-0000"),
			),
		),
		validation.Field(&r.HomepageURL,
			validation.When(r.HomepageURL != nil, is.URL),
		),
		validation.Field(&r.Creator,
			validation.Required.Error("creator is required"),
		),
	)
}

// UpdateAuthorRequest is a partial update; nil fields keep current values.
// Changing the full name recomputes the normalized matching key.
type UpdateAuthorRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	FamilyName  *string `json:"family_name,omitempty"`
	GivenName   *string `json:"given_name,omitempty"`
	ORCID       *string `json:"orcid,omitempty"`
	HomepageURL *string `json:"homepage_url,omitempty"`
	Affiliation *string `json:"affiliation,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Modifier string `json:"modifier"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.When(r.FullName != nil, validation.Length(1, 500)),
		),
		validation.Field(&r.ORCID,
			validation.When(r.ORCID != nil,
				validation.Match(orcidPattern).Error("orcid must look like 0000-0000-0000-0000"),
			),
		),
		validation.Field(&r.HomepageURL,
			validation.When(r.HomepageURL != nil, is.URL),
		),
		validation.Field(&r.Modifier,
			validation.Required.Error("modifier is required"),
		),
	)
}

// AddVariantRequest registers an alternate name form for an author.
type AddVariantRequest struct {
	VariantName string  `json:"variant_name"`
	VariantType *string `json:"variant_type,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	Creator string `json:"creator"`
}

func (r AddVariantRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VariantName,
			validation.Required.Error("variant name is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Creator,
			validation.Required.Error("creator is required"),
		),
	)
}

// AuthorFilter narrows List results. Search matches any of the name columns,
// case-insensitively.
type AuthorFilter struct {
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}
