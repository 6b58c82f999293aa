package conference

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"quantumdb-backend/internal/shared"
)

const (
	MinYear = 1990
	MaxYear = 2100
)

var (
	countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)
	timezonePattern    = regexp.MustCompile(`^[A-Za-z]+(/[A-Za-z0-9_+-]+)+$`)
)

// CreateConferenceRequest carries everything needed to register a new
// conference edition. Creator tags come from the caller, never invented here.
type CreateConferenceRequest struct {
	Venue     string     `json:"venue"`
	Year      int        `json:"year"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	CountryCode *string `json:"country_code,omitempty"`
	IsVirtual   *bool   `json:"is_virtual,omitempty"`
	IsHybrid    *bool   `json:"is_hybrid,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	VenueName   *string `json:"venue_name,omitempty"`

	WebsiteURL           *string `json:"website_url,omitempty"`
	ProceedingsURL       *string `json:"proceedings_url,omitempty"`
	ProceedingsPublisher *string `json:"proceedings_publisher,omitempty"`
	ProceedingsVolume    *string `json:"proceedings_volume,omitempty"`
	ProceedingsDOI       *string `json:"proceedings_doi,omitempty"`

	SubmissionCount *int `json:"submission_count,omitempty"`
	AcceptanceCount *int `json:"acceptance_count,omitempty"`

	ArchiveURL           *string `json:"archive_url,omitempty"`
	ArchiveOrganizersURL *string `json:"archive_organizers_url,omitempty"`
	ArchivePCURL         *string `json:"archive_pc_url,omitempty"`
	ArchiveSteeringURL   *string `json:"archive_steering_url,omitempty"`
	ArchiveProgramURL    *string `json:"archive_program_url,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Creator string `json:"creator"`
}

func (r CreateConferenceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Venue,
			validation.Required.Error("venue is required"),
			validation.By(venueRule),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Min(MinYear), validation.Max(MaxYear),
		),
		validation.Field(&r.CountryCode,
			validation.When(r.CountryCode != nil,
				validation.Match(countryCodePattern).Error("country code must be two uppercase letters"),
			),
		),
		validation.Field(&r.Timezone,
			validation.When(r.Timezone != nil,
				validation.Match(timezonePattern).Error("timezone must be an IANA Region/City name"),
			),
		),
		validation.Field(&r.WebsiteURL,
			validation.When(r.WebsiteURL != nil, is.URL),
		),
		validation.Field(&r.SubmissionCount,
			validation.When(r.SubmissionCount != nil, validation.Min(0)),
		),
		validation.Field(&r.AcceptanceCount,
			validation.When(r.AcceptanceCount != nil, validation.Min(0)),
		),
		validation.Field(&r.Creator,
			validation.Required.Error("creator is required"),
		),
	)
}

// UpdateConferenceRequest is a partial update: nil fields keep their
// current values. Venue and year are immutable once created.
type UpdateConferenceRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	CountryCode *string `json:"country_code,omitempty"`
	IsVirtual   *bool   `json:"is_virtual,omitempty"`
	IsHybrid    *bool   `json:"is_hybrid,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	VenueName   *string `json:"venue_name,omitempty"`

	WebsiteURL           *string `json:"website_url,omitempty"`
	ProceedingsURL       *string `json:"proceedings_url,omitempty"`
	ProceedingsPublisher *string `json:"proceedings_publisher,omitempty"`
	ProceedingsVolume    *string `json:"proceedings_volume,omitempty"`
	ProceedingsDOI       *string `json:"proceedings_doi,omitempty"`

	SubmissionCount *int `json:"submission_count,omitempty"`
	AcceptanceCount *int `json:"acceptance_count,omitempty"`

	ArchiveURL           *string `json:"archive_url,omitempty"`
	ArchiveOrganizersURL *string `json:"archive_organizers_url,omitempty"`
	ArchivePCURL         *string `json:"archive_pc_url,omitempty"`
	ArchiveSteeringURL   *string `json:"archive_steering_url,omitempty"`
	ArchiveProgramURL    *string `json:"archive_program_url,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Modifier string `json:"modifier"`
}

func (r UpdateConferenceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CountryCode,
			validation.When(r.CountryCode != nil,
				validation.Match(countryCodePattern).Error("country code must be two uppercase letters"),
			),
		),
		validation.Field(&r.Timezone,
			validation.When(r.Timezone != nil,
				validation.Match(timezonePattern).Error("timezone must be an IANA Region/City name"),
			),
		),
		validation.Field(&r.WebsiteURL,
			validation.When(r.WebsiteURL != nil, is.URL),
		),
		validation.Field(&r.SubmissionCount,
			validation.When(r.SubmissionCount != nil, validation.Min(0)),
		),
		validation.Field(&r.AcceptanceCount,
			validation.When(r.AcceptanceCount != nil, validation.Min(0)),
		),
		validation.Field(&r.Modifier,
			validation.Required.Error("modifier is required"),
		),
	)
}

func venueRule(value interface{}) error {
	s, _ := value.(string)
	if _, err := ParseVenue(s); err != nil {
		return ErrInvalidVenue
	}
	return nil
}

// ConferenceFilter narrows List results.
type ConferenceFilter struct {
	Venue    *Venue `json:"venue,omitempty"`
	Year     *int   `json:"year,omitempty"`
	FromYear *int   `json:"from_year,omitempty"`
	ToYear   *int   `json:"to_year,omitempty"`
}
