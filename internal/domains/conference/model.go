package conference

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quantumdb-backend/internal/shared"
	"quantumdb-backend/pkg/confslug"
)

// Venue is the closed set of conference series tracked by the catalogue.
type Venue string

const (
	VenueQIP    Venue = "QIP"
	VenueQCRYPT Venue = "QCRYPT"
	VenueTQC    Venue = "TQC"
)

// Venues returns all known venues.
func Venues() []Venue {
	return []Venue{VenueQIP, VenueQCRYPT, VenueTQC}
}

// ParseVenue converts external input into a Venue, case-insensitively.
func ParseVenue(s string) (Venue, error) {
	v := Venue(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidVenue, s)
	}
	return v, nil
}

func (v Venue) Valid() bool {
	switch v {
	case VenueQIP, VenueQCRYPT, VenueTQC:
		return true
	}
	return false
}

func (v Venue) String() string {
	return string(v)
}

// Conference is one instance of a venue in a given year.
type Conference struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Venue     Venue     `json:"venue" db:"venue"`
	Year      int       `json:"year" db:"year"`
	StartDate *time.Time `json:"start_date" db:"start_date"`
	EndDate   *time.Time `json:"end_date" db:"end_date"`

	City        *string `json:"city" db:"city"`
	Country     *string `json:"country" db:"country"`
	CountryCode *string `json:"country_code" db:"country_code"`
	IsVirtual   *bool   `json:"is_virtual" db:"is_virtual"`
	IsHybrid    *bool   `json:"is_hybrid" db:"is_hybrid"`
	Timezone    *string `json:"timezone" db:"timezone"`
	VenueName   *string `json:"venue_name" db:"venue_name"`

	WebsiteURL           *string `json:"website_url" db:"website_url"`
	ProceedingsURL       *string `json:"proceedings_url" db:"proceedings_url"`
	ProceedingsPublisher *string `json:"proceedings_publisher" db:"proceedings_publisher"`
	ProceedingsVolume    *string `json:"proceedings_volume" db:"proceedings_volume"`
	ProceedingsDOI       *string `json:"proceedings_doi" db:"proceedings_doi"`

	SubmissionCount *int `json:"submission_count" db:"submission_count"`
	AcceptanceCount *int `json:"acceptance_count" db:"acceptance_count"`

	ArchiveURL           *string `json:"archive_url" db:"archive_url"`
	ArchiveOrganizersURL *string `json:"archive_organizers_url" db:"archive_organizers_url"`
	ArchivePCURL         *string `json:"archive_pc_url" db:"archive_pc_url"`
	ArchiveSteeringURL   *string `json:"archive_steering_url" db:"archive_steering_url"`
	ArchiveProgramURL    *string `json:"archive_program_url" db:"archive_program_url"`

	Metadata shared.Metadata `json:"metadata" db:"metadata"`

	Creator   string    `json:"creator" db:"creator"`
	Modifier  string    `json:"modifier" db:"modifier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Slug returns the human-readable handle, e.g. "QIP2024".
func (c *Conference) Slug() string {
	return confslug.Make(string(c.Venue), c.Year)
}
