package publication

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quantumdb-backend/internal/shared"
)

// PaperType is the closed set of publication kinds.
type PaperType string

const (
	PaperRegular      PaperType = "regular"
	PaperPoster       PaperType = "poster"
	PaperInvited      PaperType = "invited"
	PaperTutorial     PaperType = "tutorial"
	PaperKeynote      PaperType = "keynote"
	PaperPlenary      PaperType = "plenary"
	PaperPlenaryShort PaperType = "plenary_short"
	PaperPlenaryLong  PaperType = "plenary_long"
)

// PaperTypes returns all known paper types.
func PaperTypes() []PaperType {
	return []PaperType{
		PaperRegular, PaperPoster, PaperInvited, PaperTutorial,
		PaperKeynote, PaperPlenary, PaperPlenaryShort, PaperPlenaryLong,
	}
}

// ParsePaperType converts external input into a PaperType.
func ParsePaperType(s string) (PaperType, error) {
	t := PaperType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaperType, s)
	}
	return t, nil
}

func (t PaperType) Valid() bool {
	switch t {
	case PaperRegular, PaperPoster, PaperInvited, PaperTutorial,
		PaperKeynote, PaperPlenary, PaperPlenaryShort, PaperPlenaryLong:
		return true
	}
	return false
}

func (t PaperType) String() string {
	return string(t)
}

// Publication is a paper or talk at a conference. CanonicalKey is the
// globally unique import identity. PresenterAuthorID is an annotation that
// must point at one of the listed authors; it is cleared when that
// authorship or author goes away.
type Publication struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ConferenceID uuid.UUID `json:"conference_id" db:"conference_id"`
	CanonicalKey string    `json:"canonical_key" db:"canonical_key"`

	DOI      *string  `json:"doi" db:"doi"`
	ArxivIDs []string `json:"arxiv_ids" db:"arxiv_ids"`
	Title    string   `json:"title" db:"title"`
	Abstract *string  `json:"abstract" db:"abstract"`

	PaperType       PaperType `json:"paper_type" db:"paper_type"`
	Pages           *string   `json:"pages" db:"pages"`
	SessionName     *string   `json:"session_name" db:"session_name"`
	PresentationURL *string   `json:"presentation_url" db:"presentation_url"`
	VideoURL        *string   `json:"video_url" db:"video_url"`
	YoutubeID       *string   `json:"youtube_id" db:"youtube_id"`

	Award         *string    `json:"award" db:"award"`
	AwardDate     *time.Time `json:"award_date" db:"award_date"`
	PublishedDate *time.Time `json:"published_date" db:"published_date"`

	PresenterAuthorID  *uuid.UUID `json:"presenter_author_id" db:"presenter_author_id"`
	IsProceedingsTrack bool       `json:"is_proceedings_track" db:"is_proceedings_track"`

	TalkDate *time.Time `json:"talk_date" db:"talk_date"`
	// Wall-clock start in the conference timezone, "HH:MM" or "HH:MM:SS".
	TalkTime        *string `json:"talk_time" db:"talk_time"`
	DurationMinutes *int    `json:"duration_minutes" db:"duration_minutes"`

	Metadata shared.Metadata `json:"metadata" db:"metadata"`

	Creator   string    `json:"creator" db:"creator"`
	Modifier  string    `json:"modifier" db:"modifier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Authorship links an author to a publication at a 1-indexed position,
// recording the name exactly as published and the point-in-time affiliation.
type Authorship struct {
	ID              uuid.UUID `json:"id" db:"id"`
	PublicationID   uuid.UUID `json:"publication_id" db:"publication_id"`
	AuthorID        uuid.UUID `json:"author_id" db:"author_id"`
	AuthorPosition  int       `json:"author_position" db:"author_position"`
	PublishedAsName string    `json:"published_as_name" db:"published_as_name"`
	Affiliation     *string   `json:"affiliation" db:"affiliation"`

	Metadata shared.Metadata `json:"metadata" db:"metadata"`

	Creator   string    `json:"creator" db:"creator"`
	Modifier  string    `json:"modifier" db:"modifier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
